package gfx

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/bmp"

	"github.com/vovakirdan/planetary/internal/core"
)

// assetFile describes one bitmap of the asset directory and the placeholder
// drawn when the file is absent.
type assetFile struct {
	path  string
	w, h  int
	fill  color.RGBA
	label string
	set   func(a *core.AssetSet, img core.Image)
}

var (
	skyColor    = color.RGBA{R: 8, G: 10, B: 32, A: 255}
	panelColor  = color.RGBA{R: 24, G: 28, B: 64, A: 255}
	buttonColor = color.RGBA{R: 40, G: 120, B: 60, A: 255}
)

// manifest lists every bitmap the scenes use, laid out like the shipped
// resource directory.
func manifest(worldW, worldH, explosionFrames int) []assetFile {
	files := []assetFile{
		{"background.bmp", worldW, worldH, skyColor, "", func(a *core.AssetSet, img core.Image) { a.GameBackground = img }},
		{"menu.bmp", worldW, worldH, skyColor, "PLANETARY DEFENSE", func(a *core.AssetSet, img core.Image) { a.MenuBackground = img }},
		{"highscores.bmp", worldW, worldH, panelColor, "HIGH SCORES", func(a *core.AssetSet, img core.Image) { a.HighScoresBackground = img }},
		{"gameover.bmp", worldW, worldH, panelColor, "GAME OVER", func(a *core.AssetSet, img core.Image) { a.GameOverBackground = img }},
		{"heart.bmp", 48, 48, color.RGBA{R: 200, G: 30, B: 40, A: 255}, "", func(a *core.AssetSet, img core.Image) { a.Heart = img }},
		{"single_player.bmp", 376, 82, buttonColor, "1  SINGLE PLAYER", func(a *core.AssetSet, img core.Image) { a.SinglePlayerButton = img }},
		{"multi_player.bmp", 376, 82, buttonColor, "2  MULTI PLAYER", func(a *core.AssetSet, img core.Image) { a.MultiPlayerButton = img }},
		{"high_scores.bmp", 376, 82, buttonColor, "3  HIGH SCORES", func(a *core.AssetSet, img core.Image) { a.HighScoresButton = img }},
	}

	buildingHeights := [3]int{16, 48, 76}
	for i, h := range buildingHeights {
		files = append(files, assetFile{
			path: fmt.Sprintf("buildings/%d.bmp", i), w: 160, h: h,
			fill: color.RGBA{R: uint8(60 + 60*i), G: uint8(60 + 50*i), B: 90, A: 255},
			set:  func(a *core.AssetSet, img core.Image) { a.Buildings[i] = img },
		})
	}
	for d := range 10 {
		label := strconv.Itoa(d)
		files = append(files,
			assetFile{
				path: fmt.Sprintf("digits/%d.bmp", d), w: 30, h: 45, label: label,
				set: func(a *core.AssetSet, img core.Image) { a.Digits[d] = img },
			},
			assetFile{
				path: fmt.Sprintf("big_digits/%d.bmp", d), w: 68, h: 102, label: label,
				set: func(a *core.AssetSet, img core.Image) { a.BigDigits[d] = img },
			},
		)
	}
	for f := range explosionFrames {
		files = append(files, assetFile{
			path: fmt.Sprintf("Explosion/%02d.bmp", f), w: 64, h: 64,
			set: func(a *core.AssetSet, img core.Image) { a.Explosion[f] = img },
		})
	}
	return files
}

// decodeBMP reads one bitmap from fsys.
func decodeBMP(fsys fs.FS, name string) (image.Image, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := bmp.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("gfx: cannot decode %s: %w", name, err)
	}
	return img, nil
}

// LoadAssets loads the bitmaps under dir. Missing files, or every file when dir
// is empty, are replaced by generated placeholders; a file that exists but
// cannot be decoded is an error.
func LoadAssets(dir string, worldW, worldH, explosionFrames int, logger *log.Logger) (*core.AssetSet, error) {
	var fsys fs.FS
	if dir != "" {
		fsys = os.DirFS(dir)
	}

	a := &core.AssetSet{Explosion: make([]core.Image, explosionFrames)}
	missing := 0
	for _, file := range manifest(worldW, worldH, explosionFrames) {
		var img *ebiten.Image
		if fsys != nil {
			src, err := decodeBMP(fsys, file.path)
			switch {
			case err == nil:
				img = ebiten.NewImageFromImage(src)
			case errors.Is(err, fs.ErrNotExist):
				missing++
			default:
				return nil, err
			}
		}
		if img == nil {
			img = placeholder(file)
		}
		file.set(a, &Bitmap{img: img})
	}

	if missing > 0 && logger != nil {
		logger.Warn("bitmaps missing, using placeholders", "dir", dir, "missing", missing)
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

func placeholder(file assetFile) *ebiten.Image {
	img := ebiten.NewImage(file.w, file.h)
	switch {
	case file.path == "background.bmp":
		img.Fill(file.fill)
		vector.FillRect(img, 0, float32(file.h-5), float32(file.w), 5, color.RGBA{R: 40, G: 140, B: 60, A: 255}, false)
	case strings.HasPrefix(file.path, "Explosion/"):
		vector.FillCircle(img, float32(file.w)/2, float32(file.h)/2, float32(file.w)/2-1, color.RGBA{R: 255, G: 140, B: 0, A: 200}, true)
	case file.fill.A != 0:
		img.Fill(file.fill)
	}
	if file.label != "" {
		ebitenutil.DebugPrintAt(img, file.label, (file.w-len(file.label)*debugGlyphW)/2, file.h/2-8)
	}
	return img
}
