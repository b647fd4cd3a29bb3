package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/askeland/minesolve/board"
	"github.com/askeland/minesolve/director/deduce"
	"github.com/askeland/minesolve/director/random"
	"github.com/askeland/minesolve/game"
	"github.com/askeland/minesolve/solver"
)

var log *logrus.Logger

func init() {
	log = logrus.New()
}

var (
	boardWidth   int
	boardHeight  int
	numMines     int
	seed         int64
	directorName string
	snapshotPath string
	saveSnapshot string
	checkOnly    bool
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "minesolve",
	Short: "Deduce Minesweeper boards from the command line",
	Long: `minesolve generates (or loads) a Minesweeper board and lets a
director play it by pure deduction, printing each step.

Generate and solve a board
	minesolve -w 30 -h 16 -m 99

Check whether a saved board is solvable without guessing
	minesolve --snapshot board.yaml --check
`,
	RunE: run,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	setup, start, err := buildSetup()
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"width":  setup.Width(),
		"height": setup.Height(),
		"mines":  setup.Mines(),
		"seed":   seed,
	}).Info("board ready")

	if saveSnapshot != "" {
		snapshot := game.Snapshot(setup, seed)
		if err := os.WriteFile(saveSnapshot, []byte(snapshot.Serialize()), 0666); err != nil {
			return fmt.Errorf("cannot save snapshot: %w", err)
		}
	}

	g := game.New(setup)
	if _, ok := g.Open(start); !ok {
		return fmt.Errorf("starting cell %v holds a mine", start)
	}

	if checkOnly {
		if solver.IsSolvable(g) {
			fmt.Println("solvable without guessing")
			return nil
		}
		fmt.Println("not solvable without guessing")
		return nil
	}

	director, err := newDirector()
	if err != nil {
		return err
	}
	director.Init(g)
	defer director.End()

	playOut(g, director)
	return nil
}

func playOut(g *game.Game, director game.Director) {
	observer, _ := director.(game.CellObserver)

	for step := 1; !g.IsWin(); step++ {
		moves := director.Act()
		if len(moves) == 0 {
			fmt.Print(g)
			log.WithField("step", step).Warn("no moves left, giving up")
			return
		}

		for _, pos := range moves {
			if g.IsVisible(pos) {
				continue
			}
			opened, ok := g.Open(pos)
			if !ok {
				fmt.Print(g)
				log.WithFields(logrus.Fields{
					"step": step,
					"pos":  pos,
				}).Error("stepped on a mine")
				return
			}
			if observer != nil {
				observer.CellsOpened(opened)
			}
		}
		log.WithFields(logrus.Fields{
			"step":   step,
			"hidden": g.HiddenFields(),
		}).Debug("step done")
	}

	fmt.Print(g)
	log.Info("win!")
}

func newDirector() (game.Director, error) {
	switch directorName {
	case "deduce":
		return &deduce.Director{}, nil
	case "random":
		return &random.Director{}, nil
	default:
		return nil, fmt.Errorf("unknown director %q", directorName)
	}
}

// buildSetup loads the snapshot when one is given, otherwise generates a
// board whose starting neighbourhood is kept free of mines.
func buildSetup() (*game.Setup, board.Vec, error) {
	if snapshotPath != "" {
		raw, err := os.ReadFile(snapshotPath)
		if err != nil {
			return nil, board.Vec{}, err
		}
		snapshot, err := game.LoadSnapshot(string(raw))
		if err != nil {
			return nil, board.Vec{}, err
		}
		setup, err := snapshot.CreateSetup()
		if err != nil {
			return nil, board.Vec{}, err
		}
		seed = snapshot.Seed
		return setup, startingCell(setup), nil
	}

	start := board.V(boardWidth/2, boardHeight/2)
	builder := game.NewSetupBuilder(boardWidth, boardHeight, seed)
	builder.ProtectAll(start.WithNeighbours())
	if !builder.AddRandomMines(numMines) {
		return nil, board.Vec{}, fmt.Errorf("cannot fit %d mines on a %dx%d board",
			numMines, boardWidth, boardHeight)
	}
	return builder.Build(), start, nil
}

// startingCell picks a safe opening for a loaded board, preferring a blank
// cell so the first reveal covers some ground.
func startingCell(setup *game.Setup) board.Vec {
	start := board.Vec{}
	for pos := range setup.Positions() {
		field := setup.FieldAt(pos)
		if field.IsBlank() {
			return pos
		}
		if !field.IsMine() {
			start = pos
		}
	}
	return start
}

func init() {
	// Define our root -help without a shorthand, as we'll use -h for --height
	rootCmd.Flags().Bool("help", false, "Help for this command")

	rootCmd.Flags().IntVarP(&boardWidth, "width", "w", 30, "Width of the board, in cells")
	rootCmd.Flags().IntVarP(&boardHeight, "height", "h", 16, "Height of the board, in cells")
	rootCmd.Flags().IntVarP(&numMines, "mines", "m", 99, "Number of mines to place")
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "Mine placement seed (0 picks one from the clock)")
	rootCmd.Flags().StringVarP(&directorName, "director", "d", "deduce", "Director playing the board (deduce, random)")
	rootCmd.Flags().StringVar(&snapshotPath, "snapshot", "", "Load the board from a snapshot file instead of generating one")
	rootCmd.Flags().StringVar(&saveSnapshot, "save-snapshot", "", "Save the generated board to a snapshot file")
	rootCmd.Flags().BoolVar(&checkOnly, "check", false, "Only report whether the board is solvable without guessing")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log every step")
}
