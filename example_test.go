package texloc_test

import (
	"context"
	"fmt"
	"os"

	"github.com/hupe1980/texloc"
	"github.com/hupe1980/texloc/blobstore"
	"github.com/hupe1980/texloc/marker"
	"github.com/hupe1980/texloc/testutil"
	"github.com/hupe1980/texloc/texindex"
)

func Example() {
	ctx := context.Background()

	store := blobstore.NewMemoryStore()
	if err := testutil.NewMapBuilder(2).
		Place(0, 0, 0, "tex_a").
		Place(0, 2, 0, "tex_a").
		Write(ctx, store); err != nil {
		panic(err)
	}

	loc, err := texloc.New(store, texloc.WithParallelism(4))
	if err != nil {
		panic(err)
	}

	markers, report, err := loc.Locate(ctx, texindex.Identity([]string{"tex_a"}))
	if err != nil {
		panic(err)
	}
	fmt.Println("candidates:", report.Candidates)

	if err := marker.Encode(os.Stdout, markers); err != nil {
		panic(err)
	}
	// Output:
	// candidates: 2
	// {
	//   "tex_a": {
	//     "type": "point",
	//     "coordinates": [
	//       {
	//         "x": 0,
	//         "y": 0,
	//         "layer": 0
	//       },
	//       {
	//         "x": 0,
	//         "y": 2,
	//         "layer": 0
	//       }
	//     ]
	//   }
	// }
}
