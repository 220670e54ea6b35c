package codec

import (
	"testing"

	"github.com/hupe1980/texloc/model"
)

func benchSet() model.MarkerSet {
	set := make(model.MarkerSet)
	for m := range 20 {
		g := &model.MarkerGroup{Kind: model.KindPoint}
		for i := range 500 {
			g.Coordinates = append(g.Coordinates, model.Coordinate{X: i * 3, Y: m * 7, Layer: i % 4})
		}
		set[string(rune('a'+m))+"_marker"] = g
	}
	return set
}

func benchmarkCodecMarshal(b *testing.B, c Codec, v any) {
	b.Helper()
	b.ReportAllocs()

	warm, err := c.MarshalIndent(v, "", "  ")
	if err != nil {
		b.Fatal(err)
	}
	b.SetBytes(int64(len(warm)))

	var sink []byte
	b.ResetTimer()
	for b.Loop() {
		out, err := c.MarshalIndent(v, "", "  ")
		if err != nil {
			b.Fatal(err)
		}
		sink = out
	}
	_ = sink
}

func benchmarkCodecUnmarshal(b *testing.B, c Codec, data []byte) {
	b.Helper()
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))

	b.ResetTimer()
	for b.Loop() {
		var set model.MarkerSet
		if err := c.Unmarshal(data, &set); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMarshal(b *testing.B) {
	set := benchSet()
	b.Run("json", func(b *testing.B) { benchmarkCodecMarshal(b, JSON{}, set) })
	b.Run("go-json", func(b *testing.B) { benchmarkCodecMarshal(b, GoJSON{}, set) })
}

func BenchmarkUnmarshal(b *testing.B) {
	data, err := JSON{}.Marshal(benchSet())
	if err != nil {
		b.Fatal(err)
	}
	b.Run("json", func(b *testing.B) { benchmarkCodecUnmarshal(b, JSON{}, data) })
	b.Run("go-json", func(b *testing.B) { benchmarkCodecUnmarshal(b, GoJSON{}, data) })
}
