// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"sort"

	"github.com/samber/lo"
)

type stringSet map[string]struct{}

func add(sets map[string]stringSet, key, member string) {
	set, ok := sets[key]
	if !ok {
		set = make(stringSet)
		sets[key] = set
	}
	set[member] = struct{}{}
}

func remove(sets map[string]stringSet, key, member string) {
	set, ok := sets[key]
	if !ok {
		return
	}
	delete(set, member)
	if len(set) == 0 {
		delete(sets, key)
	}
}

func sorted(set stringSet) []string {
	out := lo.Keys(set)
	sort.Strings(out)
	return out
}
