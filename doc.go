/*
Package listkit provides an immediate-mode reorderable list widget and the
small GUI core it runs on.

# Overview

The UI is rebuilt on every pass. A host feeds input through an EventQueue
and calls GUI.Frame once per window refresh; Frame runs one pass per queued
event, then a Layout pass and a Repaint pass. Widgets handle input during
event passes and only draw during Repaint. Draw output is a DrawList of
textured triangles that a Renderer submits: the OpenGL backend, the
software rasterizer in package raster, or the terminal backend.

# Quick Start

	levels := []string{"Turismo", "Bomb Da Base", "Last Requests"}
	list := listkit.NewListView(listkit.NewSliceSource(&levels),
	    listkit.WithTheme(listkit.DefaultTheme()),
	    listkit.WithMatcher(listkit.FuzzyMatcher{}),
	)

	renderer, _ := opengl.NewRenderer(360, 480)
	ui := listkit.New(renderer)
	input := opengl.NewGLFWInputAdapter(window)

	for !window.ShouldClose() {
	    glfw.PollEvents()
	    err := ui.Frame(input.Events(), listkit.Vec2{360, 480}, glfw.GetTime(), func(ctx *listkit.Context) {
	        ctx.Area(listkit.Rect{W: 360, H: 480}, listkit.LayoutVertical)(func() {
	            list.Display(ctx)
	        })
	    })
	    ...
	}

# Sources

A ListView edits an ElementSource. Three adapters are provided:

	PropertyArraySource   a serialized array property (PropertyArray)
	HandleListSource      a list of element handles with a factory
	SliceSource[T]        a Go slice owned by the caller

Moves are stable: the moved element lands at the destination and the
relative order of every other element is kept. Sources that cannot insert
return ErrUnsupported and the list shows nothing new.

# Themes

Every visual part of the list is a LayerConfig, a stack of solid, rounded,
gradient and border layers drawn bottom to top. Themes are plain structs
and can be loaded from TOML or YAML theme files with LoadThemeDatabase;
fields a file leaves out keep their DefaultTheme value.

# Keyboard Reference

List:

	Up / Down        Select the previous or next element, crossing pages
	Left / Right     Previous or next page
	Page Up / Down   First or last page
	Home / End       Select the first or last element
	Delete           Remove the selected element
	Mouse Wheel      Previous or next page

Search field:

	Left / Right     Move the cursor
	Home / End       Jump to start or end
	Backspace        Delete before the cursor
	Delete           Delete after the cursor
	Enter / Escape   Leave the field

Context menu:

	Up / Down        Move the highlight, skipping separators and disabled items
	Enter / Space    Run the highlighted item
	Escape           Close
*/
package listkit
