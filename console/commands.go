// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package console

import (
	"fmt"
	"strconv"

	"cogentcore.org/scenes/base/logx"
	"cogentcore.org/scenes/camera"
	"cogentcore.org/scenes/editor"
	"cogentcore.org/scenes/math32"
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"github.com/mattn/go-shellwords"
)

// command is one console command.
type command struct {
	name  string
	usage string
	doc   string
	nargs int
	run   func(cs *Console, args []string) error
}

// commands are all of the console commands, in help order.
var commands []*command

func init() {
	commands = []*command{
		{"help", "", "show this help", 0, (*Console).help},
		{"show", "", "show the scene and viewport cameras", 0, (*Console).show},
		{"select", "", "select the scene camera", 0, (*Console).selectCamera},
		{"deselect", "", "clear the selection", 0, (*Console).deselect},
		{"new", "", "start a new scene", 0, (*Console).newScene},
		{"mode", "look|focus", "set the orientation mode", 1, (*Console).mode},
		{"pos", "x|y|z <value>", "set a position component", 2, (*Console).pos},
		{"orient", "x|y|z <value>", "set a look or focus component", 2, (*Console).orient},
		{"up", "x|y|z <value>", "set an up component", 2, (*Console).up},
		{"height", "<value>", "set the height angle in degrees", 1, (*Console).height},
		{"nudge", "pos|orient|up|height [x|y|z] +|-", "step a value up or down", -1, (*Console).nudge},
		{"reset", "", "reset the viewport to the scene camera", 0, (*Console).reset},
		{"save", "", "save the viewport view to the scene camera", 0, (*Console).save},
		{"rotate", "<dx> <dy>", "rotate the viewport camera", 2, (*Console).rotate},
		{"pan", "<dx> <dy>", "pan the viewport camera", 2, (*Console).pan},
		{"zoom", "<d>", "zoom the viewport camera", 1, (*Console).zoom},
		{"orbit", "<dx> <dy>", "orbit the viewport camera around the target", 2, (*Console).orbit},
		{"view", "save|restore <name> | list", "manage saved viewport views", -1, (*Console).view},
		{"undo", "", "undo the last scene change", 0, (*Console).undo},
		{"redo", "", "redo the last undone scene change", 0, (*Console).redo},
		{"quit", "", "exit", 0, func(cs *Console, args []string) error { return ErrQuit }},
	}
}

// Exec executes the given command line. Empty lines are ignored.
func (cs *Console) Exec(line string) error {
	args, err := shellwords.Parse(line)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return nil
	}
	name := args[0]
	args = args[1:]
	for _, cmd := range commands {
		if cmd.name != name {
			continue
		}
		if cmd.nargs >= 0 && len(args) != cmd.nargs {
			return fmt.Errorf("usage: %s %s", cmd.name, cmd.usage)
		}
		return cmd.run(cs, args)
	}
	if sug := suggest(name); sug != "" {
		return fmt.Errorf("unknown command %q; did you mean %q?", name, sug)
	}
	return fmt.Errorf("unknown command %q; type help for a list of commands", name)
}

// suggest returns the command most similar to the given unknown one,
// or "" if none is similar enough.
func suggest(name string) string {
	lev := metrics.NewLevenshtein()
	lev.CaseSensitive = false
	best, bestSim := "", 0.5
	for _, cmd := range commands {
		sim := strutil.Similarity(name, cmd.name, lev)
		if sim >= bestSim {
			best, bestSim = cmd.name, sim
		}
	}
	return best
}

func (cs *Console) help(args []string) error {
	for _, cmd := range commands {
		fmt.Fprintf(cs.Out, "%-10s %-36s %s\n", logx.CmdColor(cmd.name), cmd.usage, cmd.doc)
	}
	return nil
}

func (cs *Console) show(args []string) error {
	if cam, ok := cs.Store.SelectedCamera(); ok {
		or := cs.Editor.Orientation()
		fmt.Fprintf(cs.Out, "scene:    %v\n", cam)
		fmt.Fprintf(cs.Out, "cache:    look: %v focus: %v\n", or.Look, or.Focus)
	} else {
		fmt.Fprintln(cs.Out, "scene:    no camera selected")
	}
	fmt.Fprintf(cs.Out, "viewport: %v\n", cs.Viewport.Camera())
	return nil
}

func (cs *Console) selectCamera(args []string) error {
	cs.Store.SelectCamera()
	cs.Editor.Refresh()
	return nil
}

func (cs *Console) deselect(args []string) error {
	cs.Store.ClearSelection()
	cs.Editor.Refresh()
	return nil
}

func (cs *Console) newScene(args []string) error {
	cs.Store.NewScene(cs.Config.Camera)
	cs.Viewport.Defaults()
	cs.Editor.Refresh()
	return nil
}

func (cs *Console) mode(args []string) error {
	var m camera.OrientationModes
	if err := m.SetString(args[0]); err != nil {
		return err
	}
	cs.Editor.SetMode(m)
	return nil
}

func (cs *Console) pos(args []string) error {
	return cs.editVector(args, cs.Editor.EditPosition)
}

func (cs *Console) orient(args []string) error {
	return cs.editVector(args, cs.Editor.EditOrientation)
}

func (cs *Console) up(args []string) error {
	return cs.editVector(args, cs.Editor.EditUp)
}

// editVector runs a vector component edit. Invalid values are ignored
// by the editor, so only an invalid dimension is an error here.
func (cs *Console) editVector(args []string, edit func(dim math32.Dims, text string) bool) error {
	var dim math32.Dims
	if err := dim.SetString(args[0]); err != nil {
		return err
	}
	edit(dim, args[1])
	return nil
}

// height edits the height angle, rejecting numbers outside of the
// configured range. Invalid numbers are ignored.
func (cs *Console) height(args []string) error {
	if v, ok := editor.ParseValue(args[0]); ok && !cs.Config.Editor.HeightAngleInRange(v) {
		ed := cs.Config.Editor
		fmt.Fprintln(cs.Out, logx.WarnColor(fmt.Sprintf("height angle must be between %g and %g", ed.HeightAngleMin, ed.HeightAngleMax)))
		return nil
	}
	cs.Editor.EditHeightAngle(args[0])
	return nil
}

func (cs *Console) nudge(args []string) error {
	usage := fmt.Errorf("usage: nudge pos|orient|up|height [x|y|z] +|-")
	if len(args) < 2 {
		return usage
	}
	cam, ok := cs.Store.SelectedCamera()
	if !ok {
		return nil
	}
	sign := float32(1)
	switch args[len(args)-1] {
	case "+":
	case "-":
		sign = -1
	default:
		return usage
	}
	if args[0] == "height" {
		if len(args) != 2 {
			return usage
		}
		return cs.height([]string{format(cam.HeightAngle + sign*cs.Config.Editor.HeightAngleStep)})
	}
	if len(args) != 3 {
		return usage
	}
	var dim math32.Dims
	if err := dim.SetString(args[1]); err != nil {
		return err
	}
	step := sign * cs.Config.Editor.Step
	switch args[0] {
	case "pos":
		cs.Editor.EditPosition(dim, format(cam.Position.Dim(dim)+step))
	case "orient":
		or := cs.Editor.Orientation()
		cs.Editor.EditOrientation(dim, format(or.Active().Dim(dim)+step))
	case "up":
		cs.Editor.EditUp(dim, format(cam.Up.Dim(dim)+step))
	default:
		return usage
	}
	return nil
}

func (cs *Console) reset(args []string) error {
	cs.Editor.ResetViewport()
	return nil
}

func (cs *Console) save(args []string) error {
	cs.Editor.SaveView()
	return nil
}

func (cs *Console) rotate(args []string) error {
	dx, dy, err := parse2(args)
	if err != nil {
		return err
	}
	step := cs.Config.Viewport.RotateStep
	cs.Viewport.Rotate(dx*step, dy*step)
	return nil
}

func (cs *Console) pan(args []string) error {
	dx, dy, err := parse2(args)
	if err != nil {
		return err
	}
	step := cs.Config.Viewport.PanStep
	cs.Viewport.Pan(dx*step, dy*step)
	return nil
}

func (cs *Console) zoom(args []string) error {
	d, err := parseArg(args[0])
	if err != nil {
		return err
	}
	cs.Viewport.Zoom(d * cs.Config.Viewport.ZoomStep)
	return nil
}

func (cs *Console) orbit(args []string) error {
	dx, dy, err := parse2(args)
	if err != nil {
		return err
	}
	step := cs.Config.Viewport.RotateStep
	cs.Viewport.Orbit(cs.Config.Viewport.Target, dx*step, dy*step)
	return nil
}

func (cs *Console) view(args []string) error {
	switch {
	case len(args) == 1 && args[0] == "list":
		for _, name := range cs.Viewport.SavedViews() {
			fmt.Fprintln(cs.Out, name)
		}
		return nil
	case len(args) == 2 && args[0] == "save":
		cs.Viewport.SaveView(args[1])
		return nil
	case len(args) == 2 && args[0] == "restore":
		return cs.Viewport.RestoreView(args[1])
	}
	return fmt.Errorf("usage: view save|restore <name> | list")
}

func (cs *Console) undo(args []string) error {
	action, ok := cs.Store.Undo()
	if !ok {
		fmt.Fprintln(cs.Out, "nothing to undo")
		return nil
	}
	cs.Editor.Refresh()
	fmt.Fprintln(cs.Out, logx.SuccessColor("undid "+action))
	return nil
}

func (cs *Console) redo(args []string) error {
	action, ok := cs.Store.Redo()
	if !ok {
		fmt.Fprintln(cs.Out, "nothing to redo")
		return nil
	}
	cs.Editor.Refresh()
	fmt.Fprintln(cs.Out, logx.SuccessColor("redid "+action))
	return nil
}

func format(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

func parseArg(text string) (float32, error) {
	v, ok := editor.ParseValue(text)
	if !ok {
		return 0, fmt.Errorf("invalid number %q", text)
	}
	return v, nil
}

func parse2(args []string) (float32, float32, error) {
	a, err := parseArg(args[0])
	if err != nil {
		return 0, 0, err
	}
	b, err := parseArg(args[1])
	return a, b, err
}
