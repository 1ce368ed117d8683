package scene

import (
	"solar-renderer/internal/noise"
	"solar-renderer/internal/raster"
)

// Per-body noise recipes. Seeds, base algorithms, frequencies and
// octave counts follow the reference scene, so a given body's surface
// is reproducible run to run.

func lavaNoises() []raster.NoiseSampler {
	return []raster.NoiseSampler{
		noise.NewFractal(noise.NewPerlin(42), noise.FBm, 0.002, 6),
	}
}

func earthNoises() []raster.NoiseSampler {
	atmosphere := noise.NewFractal(noise.NewPerlin(40), noise.FBm, 0.01, 2)
	atmosphere.Lacunarity = 3.0
	return []raster.NoiseSampler{
		noise.NewFractal(noise.NewPerlin(42), noise.FBm, 1.0, 5),   // mountains
		noise.NewFractal(noise.NewPerlin(1337), noise.FBm, 2.5, 4), // hills
		noise.NewFractal(noise.NewPerlin(2021), noise.FBm, 5.0, 3), // fine detail
		noise.NewFractal(noise.NewPerlin(40), noise.FBm, 5.0, 1),   // clouds
		atmosphere,
	}
}

func moonNoises() []raster.NoiseSampler {
	return []raster.NoiseSampler{
		noise.NewFractal(noise.NewPerlin(345), noise.FBm, 1.0, 4),
		noise.NewFractal(noise.NewPerlin(678), noise.FBm, 5.0, 3),
		noise.NewFractal(noise.NewPerlin(910), noise.FBm, 10.0, 2),
	}
}

func mercuryNoises() []raster.NoiseSampler {
	return []raster.NoiseSampler{
		noise.NewFractal(noise.NewWorley(2341, noise.Manhattan), noise.FBm, 0.5, 4),
		noise.NewFractal(noise.NewPerlin(4567), noise.Ridged, 2.0, 3),
		noise.NewFractal(noise.NewPerlin(7890), noise.FBm, 0.1, 2),
	}
}

func venusNoises() []raster.NoiseSampler {
	return []raster.NoiseSampler{
		noise.NewFractal(noise.NewSimplex(1337), noise.FBm, 5.0, 3),
		noise.NewFractal(noise.NewPerlin(235), noise.FBm, 0.5, 4),
	}
}

func marsNoises() []raster.NoiseSampler {
	return []raster.NoiseSampler{
		noise.NewFractal(noise.NewPerlin(1024), noise.FBm, 0.6, 4),
		noise.NewFractal(noise.NewSimplex(2048), noise.FBm, 2.0, 3),
		noise.NewFractal(noise.NewPerlin(3100), noise.Ridged, 0.5, 2),
	}
}

// Phobos shares Mercury's cratered-rock recipe.
func phobosNoises() []raster.NoiseSampler {
	return mercuryNoises()
}

func jupiterNoises() []raster.NoiseSampler {
	return []raster.NoiseSampler{
		noise.NewFractal(noise.NewSimplex(1337), noise.FBm, 5.0, 3),
		noise.NewFractal(noise.NewSimplex(42), noise.FBm, 3.0, 2),
		noise.NewFractal(noise.NewPerlin(56), noise.FBm, 1.5, 4),
	}
}

func saturnNoises() []raster.NoiseSampler {
	return []raster.NoiseSampler{
		noise.NewFractal(noise.NewSimplex(12345), noise.FBm, 3.0, 4),
		noise.NewFractal(noise.NewPerlin(67890), noise.Ridged, 1.5, 3),
	}
}

func uranusNoises() []raster.NoiseSampler {
	return []raster.NoiseSampler{
		noise.NewFractal(noise.NewSimplex(1234), noise.FBm, 1.5, 3),
		noise.NewFractal(noise.NewPerlin(5678), noise.Ridged, 2.0, 2),
	}
}

func uranusRingNoises() []raster.NoiseSampler {
	return []raster.NoiseSampler{
		noise.NewFractal(noise.NewWorley(8910, noise.Euclidean), noise.FBm, 0.5, 2),
		noise.NewFractal(noise.NewPerlin(1112), noise.FBm, 1.0, 1),
	}
}

func neptuneNoises() []raster.NoiseSampler {
	return []raster.NoiseSampler{
		noise.NewFractal(noise.NewPerlin(501), noise.FBm, 0.8, 5),
		noise.NewFractal(noise.NewPerlin(502), noise.Ridged, 1.2, 4),
	}
}

func plutoNoises() []raster.NoiseSampler {
	return []raster.NoiseSampler{
		noise.NewFractal(noise.NewWorley(601, noise.Euclidean), noise.FBm, 0.5, 1),
		noise.NewFractal(noise.NewPerlin(602), noise.FBm, 1.0, 3),
	}
}

func erisNoises() []raster.NoiseSampler {
	return []raster.NoiseSampler{
		noise.NewFractal(noise.NewPerlin(701), noise.FBm, 0.7, 4),
		noise.NewFractal(noise.NewPerlin(702), noise.Ridged, 1.1, 5),
	}
}

func sednaNoises() []raster.NoiseSampler {
	return []raster.NoiseSampler{
		noise.NewFractal(noise.NewSimplex(801), noise.FBm, 0.6, 3),
		noise.NewFractal(noise.NewWorley(802, noise.Manhattan), noise.FBm, 0.4, 1),
	}
}
