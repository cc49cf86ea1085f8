package render

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	faceOnce   sync.Once
	faceSource *text.GoTextFaceSource
	faceErr    error
)

// LabelFaceSource returns the shared Go Regular face source used for tower labels.
func LabelFaceSource() (*text.GoTextFaceSource, error) {
	faceOnce.Do(func() {
		faceSource, faceErr = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if faceErr != nil {
			faceErr = fmt.Errorf("render: load label face: %w", faceErr)
		}
	})
	return faceSource, faceErr
}
