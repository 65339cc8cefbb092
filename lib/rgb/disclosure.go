// Copyright 2026 The RGB Core Authors
// SPDX-License-Identifier: Apache-2.0

package rgb

import "github.com/grunch/rgb-core/lib/canonical"

// Disclosure reveals previously-confidential contract data to a
// counterparty: anchored transitions and extensions, with an optional
// free-form comment from the discloser.
type Disclosure struct {
	Anchors     []Anchor
	Transitions []Transition
	Extensions  []Extension
	Comment     string
}

// EncodeCanonical writes the disclosure in its canonical field order.
func (d *Disclosure) EncodeCanonical(w *canonical.Writer) {
	w.Count(len(d.Anchors))
	for i := range d.Anchors {
		d.Anchors[i].EncodeCanonical(w)
	}
	w.Count(len(d.Transitions))
	for i := range d.Transitions {
		d.Transitions[i].EncodeCanonical(w)
	}
	w.Count(len(d.Extensions))
	for i := range d.Extensions {
		d.Extensions[i].EncodeCanonical(w)
	}
	w.Bytes([]byte(d.Comment))
}

// DecodeCanonical is the inverse of EncodeCanonical.
func (d *Disclosure) DecodeCanonical(r *canonical.Reader) {
	count := r.Count()
	if count == 0 {
		d.Anchors = nil
	} else {
		d.Anchors = make([]Anchor, count)
		for i := range d.Anchors {
			d.Anchors[i].DecodeCanonical(r)
		}
	}
	count = r.Count()
	if count == 0 {
		d.Transitions = nil
	} else {
		d.Transitions = make([]Transition, count)
		for i := range d.Transitions {
			d.Transitions[i].DecodeCanonical(r)
		}
	}
	count = r.Count()
	if count == 0 {
		d.Extensions = nil
	} else {
		d.Extensions = make([]Extension, count)
		for i := range d.Extensions {
			d.Extensions[i].DecodeCanonical(r)
		}
	}
	d.Comment = string(r.Bytes())
}
