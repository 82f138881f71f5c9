// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package paint

import (
	"bytes"
	"image"
	"image/color"
	"slices"
	"testing"

	"github.com/google/uuid"

	intImage "github.com/gogpu/paint/internal/image"
)

var (
	red   = color.RGBA{R: 255, A: 255}
	green = color.RGBA{G: 255, A: 255}
	blue  = color.RGBA{B: 255, A: 255}
)

func newTestStore(t *testing.T, w, h int) *Store {
	t.Helper()
	s, err := NewStore(Size{Width: w, Height: h}, nil)
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	if err := s.Attach(); err != nil {
		t.Fatalf("Attach() error = %v", err)
	}
	return s
}

// threeLayers returns a store with red, green and blue squares on layers
// 0, 1 and 2, focused on layer 1.
func threeLayers(t *testing.T) *Store {
	t.Helper()
	s := newTestStore(t, 8, 8)
	s.Apply(&NewLayer{Index: 1, Name: "green"})
	s.Apply(&NewLayer{Index: 2, Name: "blue"})
	intImage.Fill(s.Layer(0).Image(), image.Rect(0, 0, 4, 4), red)
	intImage.Fill(s.Layer(1).Image(), image.Rect(2, 2, 6, 6), green)
	intImage.Fill(s.Layer(2).Image(), image.Rect(4, 4, 8, 8), blue)
	s.focus = 1
	s.rebuild()
	return s
}

// storeState is a deep copy of everything an action may change.
type storeState struct {
	size  Size
	focus int
	ids   []uuid.UUID
	infos []LayerInfo
	pix   [][]byte
	below []byte
	above []byte
}

func capture(s *Store) storeState {
	st := storeState{size: s.size, focus: s.focus}
	for _, l := range s.layers {
		st.ids = append(st.ids, l.ID)
		st.infos = append(st.infos, l.Info)
		st.pix = append(st.pix, slices.Clone(l.Image().Pix))
	}
	st.below = slices.Clone(s.below.(*Buffer).img.Pix)
	st.above = slices.Clone(s.above.(*Buffer).img.Pix)
	return st
}

func (a storeState) diff(b storeState) string {
	switch {
	case a.size != b.size:
		return "size " + a.size.String() + " vs " + b.size.String()
	case a.focus != b.focus:
		return "focus differs"
	case !slices.Equal(a.ids, b.ids):
		return "layer ids differ"
	case !slices.Equal(a.infos, b.infos):
		return "layer infos differ"
	case !slices.EqualFunc(a.pix, b.pix, bytes.Equal):
		return "layer pixels differ"
	case !bytes.Equal(a.below, b.below):
		return "below composite differs"
	case !bytes.Equal(a.above, b.above):
		return "above composite differs"
	}
	return ""
}

func TestActionRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		action func() Action
	}{
		{"new layer on top", func() Action { return &NewLayer{Index: 3, Name: "top"} }},
		{"new layer at bottom", func() Action { return &NewLayer{Index: 0, Name: "bottom"} }},
		{"new layer clamped", func() Action { return &NewLayer{Index: 99, Name: "far"} }},
		{"update info", func() Action {
			return &UpdateLayerInfo{Index: 0, Info: LayerInfo{Name: "x", Opacity: 0.5, BlendMode: BlendMultiply}}
		}},
		{"delete focused", func() Action { return &DeleteLayer{Index: 1} }},
		{"delete below focus", func() Action { return &DeleteLayer{Index: 0} }},
		{"delete top", func() Action { return &DeleteLayer{Index: 2} }},
		{"focus", func() Action { return &FocusLayer{Index: 2} }},
		{"focus clamped", func() Action { return &FocusLayer{Index: -4} }},
		{"merge down", func() Action { return &MergeLayer{Dest: 0, Src: 1} }},
		{"merge up", func() Action { return &MergeLayer{Dest: 2, Src: 0} }},
		{"grow canvas", func() Action { return &ChangeCanvasSize{Next: Size{Width: 12, Height: 5}} }},
		{"shrink canvas", func() Action { return &ChangeCanvasSize{Next: Size{Width: 3, Height: 3}} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := threeLayers(t)
			a := tt.action()

			before := capture(s)
			s.Apply(a)
			after := capture(s)
			if before.diff(after) == "" {
				t.Fatalf("Apply(%v) changed nothing", a)
			}

			s.Revert(a)
			if d := capture(s).diff(before); d != "" {
				t.Errorf("after Revert: %s", d)
			}
			s.Apply(a)
			if d := capture(s).diff(after); d != "" {
				t.Errorf("after re-Apply: %s", d)
			}
		})
	}
}

func TestUpdateImgRoundTrip(t *testing.T) {
	s := newTestStore(t, 8, 8)
	img := s.Layer(0).Image()
	r := image.Rect(1, 1, 5, 5)

	before := capture(s)
	a := &UpdateImg{Layer: 0, Rect: r, OldImg: intImage.Extract(img, r)}
	intImage.Fill(img, r, red)
	after := capture(s)

	s.Revert(a)
	if a.NewImg == nil {
		t.Fatal("Revert did not capture NewImg")
	}
	if d := capture(s).diff(before); d != "" {
		t.Errorf("after Revert: %s", d)
	}
	s.Apply(a)
	if got := s.Layer(0).Image().RGBAAt(2, 2); got != red {
		t.Errorf("after re-Apply pixel = %v, want %v", got, red)
	}
	s.Revert(a)
	s.Apply(a)
	if d := capture(s).diff(after); d != "" {
		t.Errorf("after second redo: %s", d)
	}
}

func TestUpdateImgApplyWithoutNewImgIsNoop(t *testing.T) {
	s := newTestStore(t, 4, 4)
	before := capture(s)
	s.Apply(&UpdateImg{Layer: 0, Rect: image.Rect(0, 0, 2, 2), OldImg: image.NewRGBA(image.Rect(0, 0, 2, 2))})
	if d := capture(s).diff(before); d != "" {
		t.Errorf("Apply without NewImg: %s", d)
	}
}

func TestDeleteLastLayer(t *testing.T) {
	s := newTestStore(t, 4, 4)
	orig := s.Layer(0)
	intImage.Fill(orig.Image(), orig.Bounds(), red)

	a := &DeleteLayer{Index: 0}
	s.Apply(a)

	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}
	if !a.CreatedEmpty {
		t.Error("CreatedEmpty = false, want true")
	}
	if s.Focus() != 0 {
		t.Errorf("Focus() = %d, want 0", s.Focus())
	}
	created := s.Layer(0)
	if created == orig || created.ID == orig.ID {
		t.Error("replacement layer is the deleted layer")
	}
	if c := created.Image().RGBAAt(1, 1); c.A != 0 {
		t.Errorf("replacement layer not transparent: %v", c)
	}

	s.Revert(a)
	if s.Len() != 1 || s.Layer(0) != orig {
		t.Errorf("Revert did not restore the original layer")
	}

	s.Apply(a)
	if s.Layer(0).ID != created.ID {
		t.Error("redo created a different replacement layer")
	}
}

func TestDeleteFocusedMovesFocus(t *testing.T) {
	tests := []struct {
		name      string
		focus     int
		index     int
		wantFocus int
		changed   bool
	}{
		{"focused middle", 1, 1, 1, true},
		{"focused top", 2, 2, 1, true},
		{"below focus", 2, 0, 1, false},
		{"above focus", 0, 2, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := threeLayers(t)
			s.focus = tt.focus
			a := &DeleteLayer{Index: tt.index}
			s.Apply(a)
			if s.Focus() != tt.wantFocus {
				t.Errorf("Focus() = %d, want %d", s.Focus(), tt.wantFocus)
			}
			if a.FocusChanged != tt.changed {
				t.Errorf("FocusChanged = %v, want %v", a.FocusChanged, tt.changed)
			}
			s.Revert(a)
			if s.Focus() != tt.focus {
				t.Errorf("after Revert Focus() = %d, want %d", s.Focus(), tt.focus)
			}
		})
	}
}

func TestMergeLayer(t *testing.T) {
	s := threeLayers(t)
	a := &MergeLayer{Dest: 0, Src: 1}
	s.Apply(a)

	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
	if s.Focus() != 0 {
		t.Errorf("focus on src did not move to dest: Focus() = %d", s.Focus())
	}
	img := s.Layer(0).Image()
	if c := img.RGBAAt(0, 0); c != red {
		t.Errorf("dest-only pixel = %v, want red", c)
	}
	if c := img.RGBAAt(3, 3); c != green {
		t.Errorf("overlap pixel = %v, want green over red", c)
	}
	if c := img.RGBAAt(5, 5); c != green {
		t.Errorf("src-only pixel = %v, want green", c)
	}
}

func TestMergeHiddenSource(t *testing.T) {
	s := threeLayers(t)
	s.Layer(1).Info.Visible = false
	s.Apply(&MergeLayer{Dest: 0, Src: 1})
	if c := s.Layer(0).Image().RGBAAt(5, 5); c.A != 0 {
		t.Errorf("hidden source contributed: %v", c)
	}
}

func TestMergeInvalidIsNoop(t *testing.T) {
	tests := []*MergeLayer{
		{Dest: 1, Src: 1},
		{Dest: 0, Src: 3},
		{Dest: -1, Src: 0},
	}
	for _, a := range tests {
		s := threeLayers(t)
		before := capture(s)
		s.Apply(a)
		s.Revert(a)
		if d := capture(s).diff(before); d != "" {
			t.Errorf("%v: %s", a, d)
		}
	}
}

func TestFocusLayerClamps(t *testing.T) {
	s := threeLayers(t)
	a := &FocusLayer{Index: 7}
	s.Apply(a)
	if s.Focus() != 2 {
		t.Errorf("Focus() = %d, want 2", s.Focus())
	}
	if a.OldIndex != 1 {
		t.Errorf("OldIndex = %d, want 1", a.OldIndex)
	}
}

func TestUpdateLayerInfoNormalizes(t *testing.T) {
	s := threeLayers(t)
	s.Apply(&UpdateLayerInfo{Index: 0, Info: LayerInfo{Name: "n", Visible: true, Opacity: 3}})
	if got := s.Layer(0).Info.Opacity; got != 1 {
		t.Errorf("Opacity = %v, want 1", got)
	}
}

func TestComposites(t *testing.T) {
	s := threeLayers(t)
	below := s.below.(*Buffer).img
	above := s.above.(*Buffer).img

	if c := below.RGBAAt(0, 0); c != red {
		t.Errorf("below(0,0) = %v, want red", c)
	}
	if c := below.RGBAAt(5, 5); c.A != 0 {
		t.Errorf("below contains the focused layer: %v", c)
	}
	if c := above.RGBAAt(6, 6); c != blue {
		t.Errorf("above(6,6) = %v, want blue", c)
	}

	s.Apply(&FocusLayer{Index: 2})
	below = s.below.(*Buffer).img
	if c := below.RGBAAt(3, 3); c != green {
		t.Errorf("after focus change below(3,3) = %v, want green", c)
	}
	if c := s.above.(*Buffer).img.RGBAAt(6, 6); c.A != 0 {
		t.Errorf("above not empty with top layer focused: %v", c)
	}
}

func TestChangeCanvasSizeAnchorsTopLeft(t *testing.T) {
	s := threeLayers(t)
	s.Apply(&ChangeCanvasSize{Next: Size{Width: 10, Height: 10}})
	if s.Size() != (Size{Width: 10, Height: 10}) {
		t.Fatalf("Size() = %v", s.Size())
	}
	l := s.Layer(0)
	if l.Bounds() != image.Rect(0, 0, 10, 10) {
		t.Errorf("layer bounds = %v", l.Bounds())
	}
	if c := l.Image().RGBAAt(0, 0); c != red {
		t.Errorf("(0,0) = %v, want red", c)
	}
	if c := l.Image().RGBAAt(9, 9); c.A != 0 {
		t.Errorf("padding not transparent: %v", c)
	}
	if got := s.Surface(SurfaceScratch).Bounds(); got != image.Rect(0, 0, 10, 10) {
		t.Errorf("scratch bounds = %v", got)
	}
}

func TestChangeCanvasSizeInvalidIsNoop(t *testing.T) {
	s := threeLayers(t)
	before := capture(s)
	a := &ChangeCanvasSize{Next: Size{Width: 0, Height: 5}}
	s.Apply(a)
	s.Revert(a)
	if d := capture(s).diff(before); d != "" {
		t.Error(d)
	}
}

func TestStoreDetached(t *testing.T) {
	s, err := NewStore(Size{Width: 4, Height: 4}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if s.Attached() {
		t.Fatal("new store is attached")
	}
	for _, k := range SurfaceKinds {
		if s.Surface(k) != nil {
			t.Errorf("Surface(%v) non-nil while detached", k)
		}
	}
	// Layer edits do not need surfaces.
	s.Apply(&NewLayer{Index: 1})
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
	if err := s.Attach(); err != nil {
		t.Fatal(err)
	}
	if s.Surface(SurfaceBelow) == nil {
		t.Error("Surface(SurfaceBelow) nil after Attach")
	}
}

func TestNewStoreInvalid(t *testing.T) {
	if _, err := NewStore(Size{Width: 0, Height: 3}, nil); err == nil {
		t.Error("NewStore(0x3) returned nil error")
	}
}
