/*
A library to infer structural types from example values.
Copyright (C) 2025  Marcus Perlick

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU Affero General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU Affero General Public License for more details.

You should have received a copy of the GNU Affero General Public License
along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

package jstype

import (
	"encoding/binary"
	"hash/maphash"
	"slices"
	"strings"
)

var (
	hashEndian = binary.LittleEndian
	hashSeed   = maphash.MakeSeed()
)

// Fingerprint computes a structural hash of t. Equal types have the same
// fingerprint within one process.
func Fingerprint(t Type) uint64 { return fingerprint(t, nil) }

// Reuse counts the occurrences of structurally equal types.
type Reuse struct {
	Type  Type
	Count int
}

// DedupHash collects the sub-structures of types by their fingerprint.
type DedupHash map[uint64][]*Reuse

// Add registers t and all its nested types and returns t's fingerprint.
func (dh DedupHash) Add(t Type) uint64 { return fingerprint(t, dh) }

// Recurring returns lists with members, records and unions that were
// found at least minCount times, but at least twice. The result is sorted by
// Compare of the types.
func (dh DedupHash) Recurring(minCount int) (res []*Reuse) {
	minCount = max(minCount, 2)
	for _, rs := range dh {
		for _, r := range rs {
			if r.Count >= minCount && composite(r.Type) {
				res = append(res, r)
			}
		}
	}
	slices.SortFunc(res, func(a, b *Reuse) int { return Compare(a.Type, b.Type) })
	return res
}

func composite(t Type) bool {
	switch t := t.(type) {
	case List:
		return len(t) > 0
	case Record, OneOf:
		return true
	}
	return false
}

func (dh DedupHash) add(h uint64, t Type) {
	for _, r := range dh[h] {
		if Equal(r.Type, t) {
			r.Count++
			return
		}
	}
	dh[h] = append(dh[h], &Reuse{Type: t, Count: 1})
}

func startHash(k Kind) *maphash.Hash {
	h := new(maphash.Hash)
	h.SetSeed(hashSeed)
	binary.Write(h, hashEndian, int32(k))
	return h
}

func fingerprint(t Type, dh DedupHash) uint64 {
	hash := startHash(KindOf(t))
	switch t := t.(type) {
	case Scalar:
		hash.WriteString(string(t))
	case List:
		writeSetHash(hash, t, dh)
	case OneOf:
		writeSetHash(hash, t, dh)
	case Record:
		fs := slices.Clone(t)
		slices.SortFunc(fs, func(a, b Field) int { return strings.Compare(a.Name, b.Name) })
		for _, f := range fs {
			hash.WriteString(f.Name)
			hash.WriteByte(0)
			binary.Write(hash, hashEndian, fingerprint(f.Type, dh))
		}
	}
	res := hash.Sum64()
	if dh != nil {
		dh.add(res, t)
	}
	return res
}

// writeSetHash hashes the members of a set independent of their order and
// their multiplicity.
func writeSetHash(hash *maphash.Hash, ts []Type, dh DedupHash) {
	hs := make([]uint64, len(ts))
	for i, t := range ts {
		hs[i] = fingerprint(t, dh)
	}
	slices.Sort(hs)
	for _, h := range slices.Compact(hs) {
		binary.Write(hash, hashEndian, h)
	}
}
