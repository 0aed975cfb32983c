package folio

import "sort"

// TagIndex maps every tag to the items carrying it, newest first, and keeps
// the sorted list of all tags. It is built once per snapshot.
type TagIndex struct {
	tags  []Tag
	byTag map[Tag][]Item
}

// BuildTagIndex buckets items by tag in a single pass. Buckets are ordered by
// date descending; items with equal dates keep their input order.
func BuildTagIndex(items []Item) *TagIndex {
	idx := &TagIndex{byTag: make(map[Tag][]Item)}
	for _, item := range items {
		// An item listing the same tag twice is indexed once.
		seen := make(map[Tag]bool, len(item.Tags))
		for _, t := range item.Tags {
			if seen[t] {
				continue
			}
			seen[t] = true
			idx.byTag[t] = append(idx.byTag[t], item)
		}
	}
	for t, bucket := range idx.byTag {
		sort.SliceStable(bucket, func(i, j int) bool {
			return bucket[i].Date.After(bucket[j].Date)
		})
		idx.tags = append(idx.tags, t)
	}
	sort.Slice(idx.tags, func(i, j int) bool { return idx.tags[i] < idx.tags[j] })
	return idx
}

// ItemsForTag returns the items tagged with t, newest first. Unknown tags
// yield an empty slice.
func (x *TagIndex) ItemsForTag(t Tag) []Item {
	bucket := x.byTag[t]
	out := make([]Item, len(bucket))
	copy(out, bucket)
	return out
}

// AllTags returns every distinct tag in ascending order.
func (x *TagIndex) AllTags() []Tag {
	out := make([]Tag, len(x.tags))
	copy(out, x.tags)
	return out
}

// Len returns the number of distinct tags.
func (x *TagIndex) Len() int { return len(x.tags) }
