package geom

import "testing"

func TestPathElements(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.QuadraticTo(15, 5, 10, 10)
	p.Close()

	elems := p.Elements()
	if len(elems) != 4 {
		t.Fatalf("len(Elements()) = %d, want 4", len(elems))
	}
	if _, ok := elems[0].(MoveTo); !ok {
		t.Errorf("elems[0] = %T, want MoveTo", elems[0])
	}
	if _, ok := elems[2].(QuadTo); !ok {
		t.Errorf("elems[2] = %T, want QuadTo", elems[2])
	}
	if _, ok := elems[3].(Close); !ok {
		t.Errorf("elems[3] = %T, want Close", elems[3])
	}

	// Close returns the current point to the subpath start.
	if pt := p.CurrentPoint(); pt != Pt(0, 0) {
		t.Errorf("CurrentPoint() = %+v, want (0,0)", pt)
	}
}

func TestPathBounds(t *testing.T) {
	p := NewPath()
	p.MoveTo(1, 2)
	p.LineTo(11, 2)
	p.LineTo(11, 7)

	b := p.Bounds()
	want := Rect{MinX: 1, MinY: 2, MaxX: 11, MaxY: 7}
	if b != want {
		t.Errorf("Bounds() = %+v, want %+v", b, want)
	}
}

func TestPathBoundsEmpty(t *testing.T) {
	if b := NewPath().Bounds(); b != (Rect{}) {
		t.Errorf("empty path Bounds() = %+v, want zero", b)
	}
	var p *Path
	if !p.IsEmpty() {
		t.Error("nil path IsEmpty() = false, want true")
	}
}

func TestPathOffset(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(5, 5)

	q := p.Offset(10, 20)
	b := q.Bounds()
	want := Rect{MinX: 10, MinY: 20, MaxX: 15, MaxY: 25}
	if b != want {
		t.Errorf("Offset(10, 20).Bounds() = %+v, want %+v", b, want)
	}

	// The original path is unchanged.
	if pb := p.Bounds(); pb != (Rect{MinX: 0, MinY: 0, MaxX: 5, MaxY: 5}) {
		t.Errorf("original Bounds() changed = %+v", pb)
	}
}
