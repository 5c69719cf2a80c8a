package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// Panel is the F1 control panel. It only calls into the App and Game.
type Panel struct {
	ui *ebitenui.UI

	runList     *widget.List
	status      *widget.Label
	nameInput   *widget.TextInput
	presetInput *widget.TextInput

	selected string
	shown    []Entry
}

var (
	panelBg   = color.NRGBA{R: 0x0b, G: 0x11, B: 0x20, A: 220}
	btnIdle   = color.NRGBA{R: 0x33, G: 0x41, B: 0x55, A: 255}
	btnHover  = color.NRGBA{R: 0x47, G: 0x55, B: 0x69, A: 255}
	btnPress  = color.NRGBA{R: 0x1e, G: 0x29, B: 0x3b, A: 255}
	textWhite = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

func newPanelTheme(face *ebtext.Face) *widget.Theme {
	return &widget.Theme{
		ListTheme: &widget.ListParams{
			EntryFace: face,
			EntryColor: &widget.ListEntryColor{
				Unselected:          textWhite,
				Selected:            color.NRGBA{R: 0x4e, G: 0xcd, B: 0xc4, A: 0xff},
				DisabledUnselected:  color.Gray{Y: 128},
				DisabledSelected:    color.Gray{Y: 96},
				SelectingBackground: btnHover,
				SelectedBackground:  btnPress,
			},
			ScrollContainerImage: &widget.ScrollContainerImage{
				Idle: imageui.NewNineSliceColor(btnPress),
				Mask: imageui.NewNineSliceColor(btnPress),
			},
		},
		ButtonTheme: &widget.ButtonParams{
			Image: &widget.ButtonImage{
				Idle:    imageui.NewNineSliceColor(btnIdle),
				Hover:   imageui.NewNineSliceColor(btnHover),
				Pressed: imageui.NewNineSliceColor(btnPress),
			},
			TextFace:  face,
			TextColor: &widget.ButtonTextColor{Idle: textWhite},
		},
		SliderTheme: &widget.SliderParams{
			TrackImage: &widget.SliderTrackImage{
				Idle:  imageui.NewNineSliceColor(btnPress),
				Hover: imageui.NewNineSliceColor(btnPress),
			},
			HandleImage: &widget.ButtonImage{
				Idle:    imageui.NewNineSliceColor(btnIdle),
				Hover:   imageui.NewNineSliceColor(btnHover),
				Pressed: imageui.NewNineSliceColor(btnPress),
			},
		},
	}
}

func NewPanel(g *Game) *Panel {
	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	theme := newPanelTheme(&face)
	p := &Panel{}

	labelColor := &widget.LabelColor{Idle: textWhite, Disabled: color.Gray{Y: 140}}
	label := func(s string) *widget.Label {
		return widget.NewLabel(widget.LabelOpts.Text(s, &face, labelColor))
	}
	button := func(s string, fn func()) *widget.Button {
		return widget.NewButton(
			widget.ButtonOpts.Image(theme.ButtonTheme.Image),
			widget.ButtonOpts.Text(s, &face, theme.ButtonTheme.TextColor),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) { fn() }),
		)
	}
	row := func(children ...widget.PreferredSizeLocateableWidget) *widget.Container {
		c := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)))
		for _, child := range children {
			c.AddChild(child)
		}
		return c
	}
	input := func() *widget.TextInput {
		return widget.NewTextInput(
			widget.TextInputOpts.WidgetOpts(widget.WidgetOpts.MinSize(180, 22)),
			widget.TextInputOpts.Image(&widget.TextInputImage{
				Idle:     imageui.NewNineSliceColor(color.NRGBA{R: 0xf1, G: 0xf5, B: 0xf9, A: 255}),
				Disabled: imageui.NewNineSliceColor(color.Gray{Y: 200}),
			}),
			widget.TextInputOpts.Color(&widget.TextInputColor{Idle: color.Black, Disabled: color.Gray{Y: 120}, Caret: color.Black}),
			widget.TextInputOpts.Face(&face),
		)
	}
	withSelected := func(fn func(id string)) func() {
		return func() {
			if p.selected != "" {
				fn(p.selected)
			}
		}
	}

	p.runList = widget.NewList(
		widget.ListOpts.Entries([]any{}),
		widget.ListOpts.EntryLabelFunc(func(e any) string {
			if entry, ok := e.(Entry); ok {
				return entry.Label
			}
			return ""
		}),
		widget.ListOpts.EntrySelectedHandler(func(args *widget.ListEntrySelectedEventArgs) {
			if entry, ok := args.Entry.(Entry); ok {
				p.selected = entry.ID
			}
		}),
		widget.ListOpts.ContainerOpts(widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.MinSize(380, 200))),
	)

	routeEntries := make([]any, 0)
	for _, r := range g.controller.Table().Routes() {
		routeEntries = append(routeEntries, r)
	}
	routeList := widget.NewList(
		widget.ListOpts.Entries(routeEntries),
		widget.ListOpts.EntryLabelFunc(func(e any) string { s, _ := e.(string); return s }),
		widget.ListOpts.EntrySelectedHandler(func(args *widget.ListEntrySelectedEventArgs) {
			if path, ok := args.Entry.(string); ok && path != g.controller.Current() {
				g.Navigate(path)
			}
		}),
		widget.ListOpts.ContainerOpts(widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.MinSize(380, 140))),
	)

	p.nameInput = input()
	p.presetInput = input()
	p.status = label("")

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(panelBg)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(8),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 12, Bottom: 12, Left: 12, Right: 12}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
				StretchVertical:    true,
			}),
		),
	)
	panel.AddChild(label("Animations (F1 to hide)"))
	panel.AddChild(row(
		button("Pause all", g.session.PauseAll),
		button("Resume all", g.session.ResumeAll),
		button("Clear", g.session.Clear),
	))
	panel.AddChild(p.runList)
	panel.AddChild(row(
		button("Play/Pause", withSelected(g.Toggle)),
		button("Remove", withSelected(g.session.Remove)),
		button("Duplicate", withSelected(g.Duplicate)),
	))
	panel.AddChild(row(p.nameInput, button("Create", func() {
		g.Create(p.nameInput.GetText())
		p.nameInput.SetText("")
	})))
	panel.AddChild(label("Preset"))
	panel.AddChild(row(p.presetInput,
		button("Save", func() { g.SavePreset(p.presetInput.GetText()) }),
		button("Load", func() { g.LoadPreset(p.presetInput.GetText()) }),
	))
	panel.AddChild(row(
		button("Copy JSON", g.CopyPreset),
		button("Paste JSON", g.PastePreset),
	))
	panel.AddChild(label("Routes"))
	panel.AddChild(routeList)
	panel.AddChild(p.status)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)

	p.ui = &ebitenui.UI{Container: root, PrimaryTheme: theme}
	return p
}

// Typing returns true while a text field has keyboard focus.
func (p *Panel) Typing() bool {
	return p != nil && (p.nameInput.IsFocused() || p.presetInput.IsFocused())
}

// Refresh rebuilds the run-state list when it changed and keeps the
// selection on the same id.
func (p *Panel) Refresh(entries []Entry, status string) {
	if p == nil {
		return
	}
	p.status.Label = status

	if equalEntries(entries, p.shown) {
		return
	}
	p.shown = entries

	items := make([]any, 0, len(entries))
	var keep any
	for _, e := range entries {
		items = append(items, e)
		if e.ID == p.selected {
			keep = e
		}
	}
	p.runList.SetEntries(items)
	if keep != nil {
		p.runList.SetSelectedEntry(keep)
	} else {
		p.selected = ""
	}
}

func equalEntries(a, b []Entry) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
