// Command folio builds and previews the site.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/folio-dev/folio"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	_ = godotenv.Load()
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// cli carries the state shared by every command once flags are parsed.
type cli struct {
	v        *viper.Viper
	cfgFile  string
	settings settings
	logger   *log.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{v: newViper()}

	root := &cobra.Command{
		Use:   "folio",
		Short: "Personal portfolio site generator",
		Long: `folio turns a directory of markdown, a talks file and compiled-in profile
data into a static portfolio site, and serves a live preview of it.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.init()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&c.cfgFile, "config", "", "config file (default is ./folio.yaml)")
	flags.BoolP("verbose", "v", false, "log debug output")
	flags.String("content", "", "content directory")
	flags.String("static", "", "static files directory")
	flags.String("db", "", "SQLite content database, used instead of the content directory")
	bindFlags(c.v, flags, map[string]string{
		"verbose":    "verbose",
		"contentDir": "content",
		"staticDir":  "static",
		"database":   "db",
	})

	root.AddCommand(
		newBuildCmd(c),
		newServeCmd(c),
		newImportCmd(c),
		newTagsCmd(c),
		newNewCmd(),
		newVersionCmd(),
	)
	return root
}

// bindFlags ties flags to settings keys. A flag only overrides the config
// file and the environment when the user sets it.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}
}

func (c *cli) init() error {
	s, err := loadSettings(c.v, c.cfgFile)
	if err != nil {
		return err
	}
	c.settings = s
	c.logger = folio.NewLogger(s.Verbose)
	if used := c.v.ConfigFileUsed(); used != "" {
		c.logger.Debugf("using config file %s", used)
	}
	return nil
}

// site returns the configured site and its content source.
func (c *cli) site() (folio.SiteConfig, folio.ContentSource, error) {
	site := c.settings.siteConfig()
	src, err := c.settings.source(site, c.logger)
	if err != nil {
		return site, nil, err
	}
	return site, src, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the folio version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "folio %s\n", version)
		},
	}
}
