package core

import "testing"

func TestInputLatchEdges(t *testing.T) {
	var l InputLatch

	l.MoveTo(V(300, 200))
	l.Press(ButtonLeft)
	l.Press(ButtonLeft) // two presses before a tick collapse into one edge
	l.KeyDown(KeySpace)
	l.KeyDown(KeyEsc)

	f := l.Sample()
	if !f.ButtonEdge(ButtonLeft) {
		t.Error("ButtonEdge(Left) should be true on the first sample")
	}
	if f.ButtonEdge(ButtonRight) {
		t.Error("ButtonEdge(Right) should be false")
	}
	if f.Key != KeyEsc {
		t.Errorf("Key = %v, expected the most recent keystroke Esc", f.Key)
	}
	if f.Pointer != V(300, 200) {
		t.Errorf("Pointer = %v, expected (300, 200)", f.Pointer)
	}

	f = l.Sample()
	if f.ButtonEdge(ButtonLeft) {
		t.Error("ButtonEdge(Left) should be cleared after being read")
	}
	if f.Key != KeyNone {
		t.Errorf("Key = %v, expected None after being read", f.Key)
	}
	if f.Pointer != V(300, 200) {
		t.Error("Pointer position should persist across samples")
	}
}

func TestInputFrameUnknownButton(t *testing.T) {
	var l InputLatch
	l.Press(Button(7))
	if l.Sample().ButtonEdge(Button(7)) {
		t.Error("unknown buttons should never report an edge")
	}
}

func TestAlignAnchorX(t *testing.T) {
	tests := []struct {
		align    Align
		expected int
	}{
		{AlignLeft, 100},
		{AlignCenter, 80},
		{AlignRight, 61},
	}
	for _, tc := range tests {
		if got := tc.align.AnchorX(100, 40); got != tc.expected {
			t.Errorf("AnchorX(100, 40) with align %d = %d, expected %d", tc.align, got, tc.expected)
		}
	}
}

type sizedImage struct{ w, h int }

func (s sizedImage) Size() (int, int) { return s.w, s.h }

type blitLog struct {
	discard
	xs []int
}

func (b *blitLog) Blit(_ Image, x, _ int, _ Align) {
	b.xs = append(b.xs, x)
}

func TestDrawNumber(t *testing.T) {
	var font [10]Image
	for i := range font {
		font[i] = sizedImage{w: 30, h: 45}
	}

	tests := []struct {
		n        int
		expected []int
	}{
		{0, []int{500}},
		{7, []int{500}},
		{120, []int{500, 468, 436}},
		{-3, []int{500}},
	}
	for _, tc := range tests {
		var log blitLog
		DrawNumber(&log, &font, tc.n, 500, 10)
		if len(log.xs) != len(tc.expected) {
			t.Fatalf("DrawNumber(%d) blitted %d digits, expected %d", tc.n, len(log.xs), len(tc.expected))
		}
		for i := range tc.expected {
			if log.xs[i] != tc.expected[i] {
				t.Errorf("DrawNumber(%d) digit %d at x=%d, expected %d", tc.n, i, log.xs[i], tc.expected[i])
			}
		}
	}
}

func TestAssetSetValidate(t *testing.T) {
	var a AssetSet
	if err := a.Validate(); err == nil {
		t.Fatal("Validate() on an empty set should fail")
	}

	img := sizedImage{w: 1, h: 1}
	a = AssetSet{
		GameBackground: img, MenuBackground: img, HighScoresBackground: img, GameOverBackground: img,
		Heart: img, SinglePlayerButton: img, MultiPlayerButton: img, HighScoresButton: img,
		Explosion: []Image{img},
	}
	for i := range a.Digits {
		a.Digits[i], a.BigDigits[i] = img, img
	}
	for i := range a.Buildings {
		a.Buildings[i] = img
	}
	if err := a.Validate(); err != nil {
		t.Fatalf("Validate() = %v, expected nil", err)
	}

	a.Explosion = append(a.Explosion, nil)
	if err := a.Validate(); err == nil {
		t.Error("Validate() should reject a nil explosion frame")
	}
}
