// Demo of the subdivision index. Samples random points over the bounding box
// of an equilateral domain triangle, classifies them with the containment
// predicate, inserts the inside ones, retrieves the stored points with a
// full-domain query, and draws the resulting subdivision to a png or svg
// file (picked by the output extension).
package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/golang/glog"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	barytrees "github.com/Jerboa-app/BaryTrees"
	"github.com/Jerboa-app/BaryTrees/bary"
	"github.com/Jerboa-app/BaryTrees/render"
	"github.com/Jerboa-app/BaryTrees/tritree"
)

var (
	numPoints = kingpin.Flag("points", "How many random points to sample.").Short('n').Default("500").Int()
	seed      = kingpin.Flag("seed", "Pseudorandom seed. 0 picks a time based seed.").Default("1").Int64()
	side      = kingpin.Flag("side", "Side length of the domain triangle.").Default("1.0").Float64()
	scale     = kingpin.Flag("scale", "Canvas pixels per domain unit.").Default("600").Float64()
	out       = kingpin.Flag("out", "Output image path, .png or .svg.").Short('o').Default("barytree.png").String()
	cat       = kingpin.Flag("imgcat", "Also print the image inline (iTerm only).").Bool()
	verbosity = kingpin.Flag("verbosity", "Log verbosity, passed to glog.").Short('v').Default("0").Int()
)

func main() {
	kingpin.Parse()
	// glog reads its settings from the standard flag package, which kingpin
	// bypasses, so hand them over manually.
	flag.CommandLine.Parse(nil)
	flag.Set("logtostderr", "true")
	flag.Set("v", strconv.Itoa(*verbosity))
	defer glog.Flush()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	r := rand.New(rand.NewSource(*seed))

	r1, r2, r3 := domainCorners(*side)
	root, err := barytrees.New(r1, r2, r3)
	if err != nil {
		glog.Fatal(err)
	}

	inserted, outside, refused := 0, 0, 0
	for i := 0; i < *numPoints; i++ {
		p := bary.Point{
			X: r2.X + r.Float64()*(r3.X-r2.X),
			Y: r.Float64() * r1.Y,
		}
		// Classify before inserting; samples outside the domain are dropped.
		if !root.Region.Contains(p) {
			outside++
			continue
		}
		if root.Insert(p) {
			inserted++
			glog.V(1).Infof("inserted %s", p)
		} else {
			// Possible for points landing exactly on a subdivision edge.
			refused++
			glog.V(1).Infof("refused %s", p)
		}
	}

	stored := root.Query(root.Region)
	glog.Infof("sampled %d points: %d inserted, %d outside, %d refused", *numPoints, inserted, outside, refused)
	glog.Infof("index holds %d nodes and returns %d points for the full domain", root.Size(), len(stored))
	if glog.V(2) {
		fmt.Print(tritree.DumpTree(root))
	}

	if err := writeImage(root, *out, *scale); err != nil {
		glog.Fatal(err)
	}
	glog.Infof("wrote %s", *out)

	if *cat {
		if err := render.Terminal(root, *scale); err != nil {
			glog.Fatal(err)
		}
	}
}

func domainCorners(side float64) (r1, r2, r3 bary.Point) {
	height := side * math.Sqrt(3) / 2
	r1 = bary.Point{X: 0, Y: height}
	r2 = bary.Point{X: -side / 2, Y: 0}
	r3 = bary.Point{X: side / 2, Y: 0}
	return r1, r2, r3
}

func writeImage(root *barytrees.Node, path string, scale float64) error {
	if strings.ToLower(filepath.Ext(path)) == ".svg" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		render.WriteSVG(root, f, scale)
		return nil
	}
	return render.WritePNG(root, path, scale)
}
