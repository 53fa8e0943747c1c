package main

import (
	"fmt"
	"image/color"

	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
)

// NewPauseUI builds the centered pause panel: resume, toggle the player's
// aim assist, toggle the stats overlay.
func NewPauseUI(g *Game) *ebitenui.UI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	btnPressedImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 255})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	btnTextColor := &widget.ButtonTextColor{Idle: white}
	centered := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	title := widget.NewText(
		widget.TextOpts.Text("Paused", face, white),
		widget.TextOpts.WidgetOpts(centered),
	)

	newButton := func(label string, onClick func(b *widget.Button)) *widget.Button {
		var btn *widget.Button
		btn = widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnPressedImg}),
			widget.ButtonOpts.Text(label, face, btnTextColor),
			widget.ButtonOpts.TextPadding(widget.Insets{Top: 4, Bottom: 4, Left: 12, Right: 12}),
			widget.ButtonOpts.WidgetOpts(centered),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				onClick(btn)
			}),
		)
		return btn
	}

	resumeBtn := newButton("Resume", func(*widget.Button) {
		g.setPaused(false)
	})
	assistBtn := newButton(assistLabel(g.assistEnabled()), func(b *widget.Button) {
		g.toggleAssist()
		b.Text().Label = assistLabel(g.assistEnabled())
	})
	debugBtn := newButton(debugLabel(g.debugEnabled()), func(b *widget.Button) {
		g.toggleDebug()
		b.Text().Label = debugLabel(g.debugEnabled())
	})
	g.assistButton = assistBtn
	g.debugButton = debugBtn

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(baseWidth/3, baseHeight/3),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	panel.AddChild(title)
	panel.AddChild(resumeBtn)
	panel.AddChild(assistBtn)
	panel.AddChild(debugBtn)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}
}

func assistLabel(enabled bool) string {
	return fmt.Sprintf("Aim assist: %s", onOff(enabled))
}

func debugLabel(enabled bool) string {
	return fmt.Sprintf("Stats overlay: %s", onOff(enabled))
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
