package dataset

import (
	"fmt"
	"strings"
)

// ParseRenameMap parses a delimited "Old:New,Old2:New2" column mapping.
func ParseRenameMap(s string) (map[string]string, error) {
	mapping := make(map[string]string)
	for _, item := range strings.Split(s, ",") {
		parts := strings.SplitN(item, ":", 2)
		if len(parts) != 2 || parts[0] == "" {
			return nil, fmt.Errorf("malformed rename mapping %q — expected \"OldName:NewName,Another:New\"", item)
		}
		mapping[parts[0]] = parts[1]
	}
	return mapping, nil
}

// Rename renames columns per the mapping. Mapping entries whose old name is
// not present are ignored, so re-applying a mapping is a no-op. Duplicate
// target names are passed through unvalidated.
func (d *Dataset) Rename(mapping map[string]string) *Dataset {
	out := d.clone()
	for i, col := range out.Columns {
		if newName, ok := mapping[col]; ok {
			out.Columns[i] = newName
		}
	}
	return out
}
