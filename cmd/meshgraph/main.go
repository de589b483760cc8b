package main

import (
	"fmt"
	"io"
	"os"

	"github.com/osuushi/meshgraph"
	"github.com/osuushi/meshgraph/advanced"
	"go.uber.org/zap"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Build a mesh from a point set and render it. Input on stdin should be
// newline separated points in the form "x y", unless --svg names an SVG file
// whose circles and polygons give the points instead.
//
// Points are inserted one at a time in input order, or sorted and inserted in
// one batch with --batch. --remove takes points back out afterwards.
func main() {
	app := kingpin.New("meshgraph", "Triangulate a point set incrementally.")
	configPath := app.Flag("config", "YAML config file. Flags override its values.").ExistingFile()

	var flags Config
	app.Flag("delaunay", "Keep the mesh Delaunay.").BoolVar(&flags.Delaunay)
	app.Flag("batch", "Sort the points and triangulate them in one pass.").BoolVar(&flags.Batch)
	app.Flag("svg", "Read points from an SVG file instead of stdin.").StringVar(&flags.SVG)
	app.Flag("remove", "Remove the point \"x y\" after building the mesh. Repeatable.").StringsVar(&flags.Remove)
	app.Flag("out", "Write the mesh to this PNG file.").StringVar(&flags.Out)
	app.Flag("scale", "Pixels per unit in the PNG.").Float64Var(&flags.Scale)
	app.Flag("labels", "Label vertices with their IDs in the PNG.").BoolVar(&flags.Labels)
	app.Flag("imgcat", "Show the PNG inline in the terminal.").BoolVar(&flags.Imgcat)
	app.Flag("dump", "Print every vertex, edge and triangle.").BoolVar(&flags.Dump)
	app.Flag("verbose", "Log every operation.").Short('v').BoolVar(&flags.Verbose)
	app.Flag("alignment-tolerance", "Collinearity tolerance, as 1 - |cos θ|.").Float64Var(&flags.Tolerances.Alignment)
	app.Flag("circle-tolerance", "Circumcircle tolerance, relative to the radius.").Float64Var(&flags.Tolerances.Circle)
	kingpin.MustParse(app.Parse(os.Args[1:]))

	config := Config{}
	if *configPath != "" {
		loaded, err := LoadConfig(*configPath)
		app.FatalIfError(err, "")
		config = loaded
	}
	config = config.Merge(flags)

	logger, err := newLogger(config.Verbose)
	app.FatalIfError(err, "creating logger")
	defer logger.Sync()

	app.FatalIfError(run(config, os.Stdin, os.Stdout, logger), "")
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func run(config Config, stdin io.Reader, stdout io.Writer, logger *zap.Logger) error {
	var points []meshgraph.Vector2
	var err error
	if config.SVG != "" {
		points, err = readSVGFile(config.SVG)
	} else {
		points, err = readPoints(stdin)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Read %d points\n", len(points))

	options := meshgraph.Options{
		Tolerances: advanced.Tolerances{
			Alignment: config.Tolerances.Alignment,
			Circle:    config.Tolerances.Circle,
		},
		Logger: logger,
	}
	mesh, err := buildMesh(points, config, options)
	if err != nil {
		return err
	}

	for _, removal := range config.Remove {
		point, err := parsePoint(removal)
		if err != nil {
			return err
		}
		if err := mesh.RemoveDelaunayPoint(point); err != nil {
			return err
		}
	}

	fmt.Fprintf(stdout, "Mesh: %d vertices, %d edges, %d triangles\n",
		mesh.VertexCount(), mesh.EdgeCount(), mesh.TriangleCount())
	if config.Dump {
		fmt.Fprint(stdout, mesh.Dump())
	}

	if config.Out != "" {
		if err := mesh.DrawPNG(config.Out, meshgraph.DrawOptions{Scale: config.Scale, Labels: config.Labels}); err != nil {
			return err
		}
		logger.Info("wrote mesh image", zap.String("path", config.Out))
		if config.Imgcat {
			if err := advanced.CatPNG(config.Out, stdout); err != nil {
				return err
			}
		}
	}
	return nil
}

func buildMesh(points []meshgraph.Vector2, config Config, options meshgraph.Options) (*meshgraph.Mesh, error) {
	if config.Batch {
		return meshgraph.Triangulate(points, config.Delaunay, options)
	}
	mesh := meshgraph.New(options)
	for _, p := range points {
		var err error
		if config.Delaunay {
			err = mesh.AddDelaunayPoint(p)
		} else {
			err = mesh.AddPoint(p)
		}
		if err != nil {
			return nil, err
		}
	}
	return mesh, nil
}
