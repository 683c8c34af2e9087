// Command worldhash generates an elevation field headlessly and prints its
// canonical seed and FNV-1a content hash. Identical inputs must print
// identical lines on every platform, which makes the output suitable for
// determinism regression scripts.
package main

import (
	"flag"
	"fmt"
	"log"

	"terraview/internal/noise"
	"terraview/internal/terrain"
)

func main() {
	seed := flag.String("seed", "default", "world seed (text or number)")
	width := flag.Int("width", 512, "elevation grid width")
	height := flag.Int("height", 512, "elevation grid height")
	octaves := flag.Int("octaves", terrain.DefaultOctaves, "FBM octave count")
	lacunarity := flag.Float64("lacunarity", terrain.DefaultLacunarity, "per-octave frequency multiplier")
	gain := flag.Float64("gain", terrain.DefaultGain, "per-octave amplitude multiplier")
	frequency := flag.Float64("frequency", terrain.DefaultFrequency, "base spatial frequency")
	flag.Parse()

	canonical := noise.NormalizeSeed(*seed)
	gen := terrain.NewGenerator(nil)
	field, err := gen.Generate(terrain.Config{
		Width:  *width,
		Height: *height,
		Seed:   canonical,
		Params: terrain.Params{
			Octaves:    *octaves,
			Lacunarity: *lacunarity,
			Gain:       *gain,
			Frequency:  *frequency,
		},
	})
	if err != nil {
		log.Fatalf("worldhash: %v", err)
	}

	fmt.Printf("seed=%d hash=%08x\n", canonical, field.Hash())
}
