package main

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// topBarHeight is the strip reserved for the overlay; pointer events there
// never reach the scene.
const topBarHeight = 40

var (
	overlayText = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	overlayDim  = color.NRGBA{R: 0xaa, G: 0xaa, B: 0xaa, A: 0xff}
)

// Overlay is the top bar with the Back button and breadcrumb, plus the F1 help panel.
type Overlay struct {
	ui       *ebitenui.UI
	path     *widget.Text
	status   *widget.Text
	help     *widget.Container
	helpText *widget.Text
	root     *widget.Container
}

// NewOverlay builds the overlay. onBack runs when the Back button is clicked.
func NewOverlay(onBack func()) *Overlay {
	barImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x10, G: 0x10, B: 0x18, A: 230})
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200})
	btnIdle := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	btnHover := imageui.NewNineSliceColor(color.NRGBA{R: 0x44, G: 0x44, B: 0x55, A: 255})

	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	btnTextColor := &widget.ButtonTextColor{Idle: overlayText}

	back := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnIdle, Hover: btnHover, Pressed: btnIdle}),
		widget.ButtonOpts.Text("< Back", &face, btnTextColor),
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(72, topBarHeight-12),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}),
		),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if onBack != nil {
				onBack()
			}
		}),
	)

	path := widget.NewText(
		widget.TextOpts.Text("", &face, overlayText),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
	status := widget.NewText(
		widget.TextOpts.Text("F1 help", &face, overlayDim),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)

	bar := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(barImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(16),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 6, Bottom: 6, Left: 8, Right: 8}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(0, topBarHeight),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
				StretchHorizontal:  true,
			}),
		),
	)
	bar.AddChild(back)
	bar.AddChild(path)
	bar.AddChild(status)

	helpText := widget.NewText(
		widget.TextOpts.Text("", &face, overlayText),
	)
	help := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	help.AddChild(helpText)
	help.GetWidget().Visibility = widget.Visibility_Hide

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(bar)
	root.AddChild(help)

	return &Overlay{
		ui:       &ebitenui.UI{Container: root},
		path:     path,
		status:   status,
		help:     help,
		helpText: helpText,
		root:     root,
	}
}

func (o *Overlay) SetPath(label string) {
	if o == nil {
		return
	}
	o.path.Label = label
}

// SetStatus shows a short message right of the breadcrumb.
func (o *Overlay) SetStatus(msg string) {
	if o == nil {
		return
	}
	if msg == "" {
		msg = "F1 help"
	}
	o.status.Label = msg
}

// SetHelp fills the help panel from the key table.
func (o *Overlay) SetHelp(keys map[string][]string) {
	if o == nil {
		return
	}
	o.helpText.Label = helpLines(keys)
}

func (o *Overlay) ToggleHelp() {
	if o == nil {
		return
	}
	w := o.help.GetWidget()
	if w.Visibility == widget.Visibility_Hide {
		w.Visibility = widget.Visibility_Show
	} else {
		w.Visibility = widget.Visibility_Hide
	}
	o.root.RequestRelayout()
}

// Contains reports whether (x, y) falls on the top bar.
func (o *Overlay) Contains(x, y int) bool {
	return o != nil && y >= 0 && y < topBarHeight
}

func helpLines(keys map[string][]string) string {
	names := make([]string, 0, len(keys))
	for name := range keys {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		fmt.Fprintf(&b, "%-14s %s\n", name, strings.Join(keys[name], ", "))
	}
	b.WriteString("\nclick           select tower\n")
	b.WriteString("enter / dbl     open directory\n")
	b.WriteString("backspace       back\n")
	b.WriteString("ctrl+c          copy path\n")
	b.WriteString("f1              toggle help")
	return b.String()
}
