package pixmath

import "testing"

func benchBitmap(b *testing.B) *Bitmap[uint16] {
	b.Helper()

	bm, err := NewBitmap[uint16](1024, 1024, 3)
	if err != nil {
		b.Fatal(err)
	}
	for i := range bm.Pix() {
		bm.Pix()[i] = uint16(i * 31)
	}
	return bm
}

func BenchmarkConvertToDepth8(b *testing.B) {
	bm := benchBitmap(b)
	lut := NewDisplayLUT()

	benches := []struct {
		name   string
		gamma  float64
		scaled int
	}{
		{name: "linear", gamma: 0},
		{name: "gamma", gamma: 0.4},
		{name: "letterbox", gamma: 0.4, scaled: 300},
	}
	for _, bench := range benches {
		bench := bench
		b.Run(bench.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, err := bm.ConvertToDepth8(func(o *ConvertOptions) {
					o.Gamma = bench.gamma
					o.LUT = lut
					o.ScaledWidth, o.ScaledHeight = bench.scaled*2, bench.scaled
				})
				if err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkGrayStats(b *testing.B) {
	bm := benchBitmap(b)
	r := Rect(0, 0, bm.Width()-1, bm.Height()-1)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := bm.GrayStats(r); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSample(b *testing.B) {
	bm := benchBitmap(b)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = bm.Sample(float64(i%1000)+0.3, float64(i%900)+0.7)
	}
}
