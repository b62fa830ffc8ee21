package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"infinite-canvas/board"
	"infinite-canvas/canvas"
	"infinite-canvas/geom"
	"infinite-canvas/hittest"
	"infinite-canvas/script"
)

var infoCmd = &cobra.Command{
	Use:   "info [board.yaml]",
	Short: "Print the shapes and camera of a saved board",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

var hitCmd = &cobra.Command{
	Use:   "hit [board.yaml] [x] [y]",
	Short: "Report the shape and resize handle under a point",
	Long: `hit loads a board and reports the topmost shape containing the point,
and the resize handle of that shape under the point, if any. Coordinates are
world units unless --screen is given, in which case they are converted with
the board's saved camera.`,
	Args: cobra.ExactArgs(3),
	RunE: runHit,
}

var scriptCmd = &cobra.Command{
	Use:   "script [file.star]",
	Short: "Build or edit a board with a Starlark script",
	Args:  cobra.ExactArgs(1),
	RunE:  runScript,
}

var (
	hitScreen bool

	scriptIn   string
	scriptOut  string
	scriptVars map[string]string
)

func init() {
	hitCmd.Flags().BoolVar(&hitScreen, "screen", false, "treat x and y as screen pixels")

	scriptCmd.Flags().StringVar(&scriptIn, "in", "", "board to start from (default: empty board)")
	scriptCmd.Flags().StringVarP(&scriptOut, "out", "o", "", "where to write the board (default: CANVAS_STATE_FILE)")
	scriptCmd.Flags().StringToStringVar(&scriptVars, "var", nil, "script variables as name=value")

	rootCmd.AddCommand(infoCmd, hitCmd, scriptCmd)
}

func loadBoard(filename string) (*board.Board, *canvas.Viewport, error) {
	v, err := cfg.Viewport()
	if err != nil {
		return nil, nil, err
	}
	b := board.New()
	if err := board.LoadFile(filename, b, v, logger); err != nil {
		return nil, nil, err
	}
	return b, v, nil
}

func runInfo(cmd *cobra.Command, args []string) error {
	filename := args[0]
	b, v, err := loadBoard(filename)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	t := v.Transform()

	fmt.Fprintf(out, "Board: %s\n", filename)
	fmt.Fprintf(out, "Camera: scale %.2f, translate (%.1f, %.1f)\n", t.Scale, t.TranslateX, t.TranslateY)
	fmt.Fprintf(out, "Shapes: %d\n", b.Len())
	if b.Len() == 0 {
		return nil
	}
	e := b.Extent()
	fmt.Fprintf(out, "Extent: (%.1f, %.1f) %.1f x %.1f\n\n", e.X, e.Y, e.Width, e.Height)

	for _, s := range b.Shapes() {
		r := s.Bounds
		fmt.Fprintf(out, "  %s  (%.1f, %.1f) %.1f x %.1f", s.ID, r.X, r.Y, r.Width, r.Height)
		if label := board.PlainLabel(s.Label); label != "" {
			first, _, _ := strings.Cut(label, "\n")
			fmt.Fprintf(out, "  %q", first)
		}
		if s.Image != "" {
			fmt.Fprintf(out, "  [%s]", s.Image)
		}
		fmt.Fprintln(out)
	}
	return nil
}

func runHit(cmd *cobra.Command, args []string) error {
	b, v, err := loadBoard(args[0])
	if err != nil {
		return err
	}
	x, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("x: %w", err)
	}
	y, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return fmt.Errorf("y: %w", err)
	}

	p := geom.Pt(x, y)
	if hitScreen {
		p = v.ScreenToWorld(p)
	}

	out := cmd.OutOrStdout()
	s, ok := b.TopmostAt(p)
	if !ok {
		fmt.Fprintln(out, "none")
		return nil
	}
	fmt.Fprintf(out, "shape %s\n", s.ID)

	tester := hittest.NewTester(v, cfg.HandleTolerance)
	if h := hittest.HandleAt(s.Bounds, p, tester.WorldTolerance()); h != hittest.NoHandle {
		fmt.Fprintf(out, "handle %s (%s)\n", h, h.Cursor())
	}
	return nil
}

func runScript(cmd *cobra.Command, args []string) error {
	b := board.New()
	v, err := cfg.Viewport()
	if err != nil {
		return err
	}
	if scriptIn != "" {
		if b, v, err = loadBoard(scriptIn); err != nil {
			return err
		}
	}

	vars := make(map[string]any, len(scriptVars))
	for k, val := range scriptVars {
		vars[k] = parseScriptVar(val)
	}

	_, err = script.Run(args[0], nil, script.Host{
		Board:           b,
		Viewport:        v,
		HandleTolerance: cfg.HandleTolerance,
		Logger:          logger,
	}, vars)
	if err != nil {
		return err
	}

	dest := scriptOut
	if dest == "" {
		dest = cfg.StateFile
	}
	if err := board.SaveFile(dest, b, v); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %d shapes to %s\n", b.Len(), dest)
	return nil
}

// parseScriptVar gives command-line values their natural Starlark type.
func parseScriptVar(s string) any {
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return s
}
