package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/bonk/common"
	"golang.org/x/image/font/basicfont"
)

var (
	uiTextColor  = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	uiPanelColor = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200}
	uiButtonIdle = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
	uiButtonOver = color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xff}
)

// NewMenuUI builds the start screen: a title, the controls and a Start
// button.
func NewMenuUI(onStart func()) *ebitenui.UI {
	return newPanelUI("BONK", []string{
		"A / D: move    W / Space: jump    Z: bonk",
		"Defeat the ghost in every level",
	}, "Start", onStart)
}

// NewPauseUI builds the centered pause panel with a Resume button.
func NewPauseUI(onResume func()) *ebitenui.UI {
	return newPanelUI("Paused", []string{"Esc: resume"}, "Resume", onResume)
}

func newPanelUI(heading string, lines []string, label string, onClick func()) *ebitenui.UI {
	panelImg := imageui.NewNineSliceColor(uiPanelColor)
	btnIdle := imageui.NewNineSliceColor(uiButtonIdle)
	btnHover := imageui.NewNineSliceColor(uiButtonOver)

	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	center := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth/2, common.BaseHeight/3),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	panel.AddChild(widget.NewText(
		widget.TextOpts.Text(heading, &face, uiTextColor),
		widget.TextOpts.WidgetOpts(center),
	))
	for _, line := range lines {
		panel.AddChild(widget.NewText(
			widget.TextOpts.Text(line, &face, uiTextColor),
			widget.TextOpts.WidgetOpts(center),
		))
	}
	panel.AddChild(widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnIdle, Hover: btnHover, Pressed: btnIdle}),
		widget.ButtonOpts.Text(label, &face, &widget.ButtonTextColor{Idle: uiTextColor}),
		widget.ButtonOpts.WidgetOpts(center, widget.WidgetOpts.MinSize(120, 28)),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if onClick != nil {
				onClick()
			}
		}),
	))

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}
}
