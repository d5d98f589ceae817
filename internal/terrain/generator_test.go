package terrain

import (
	"math"
	"testing"

	"GopherCraft/internal/config"
	"GopherCraft/internal/voxel"
)

func testGenerator(seed int64) *Generator {
	cfg := config.Default().Generator
	cfg.Seed = seed
	return NewGenerator(cfg)
}

func TestFillTerrainIsDeterministic(t *testing.T) {
	origin := voxel.ChunkCoord{X: 3, Z: -7}.Origin()

	var a, b voxel.Blocks
	na := testGenerator(42).FillTerrain(&a, origin)
	nb := testGenerator(42).FillTerrain(&b, origin)

	if na != nb {
		t.Errorf("Expected equal active counts, got %d and %d", na, nb)
	}
	if a != b {
		t.Error("Expected bit-identical block arrays for the same seed and origin")
	}
}

func TestSeedChangesTerrain(t *testing.T) {
	g1, g2 := testGenerator(1), testGenerator(2)
	for x := 0; x < 256; x += 4 {
		if g1.HeightAt(x*7, x*3) != g2.HeightAt(x*7, x*3) {
			return
		}
	}
	t.Error("Expected different seeds to produce different heights")
}

func TestActiveCountMatchesBlocks(t *testing.T) {
	g := testGenerator(7)
	var blocks voxel.Blocks
	origin := voxel.ChunkCoord{X: -2, Z: 5}.Origin()
	active := g.FillTerrain(&blocks, origin)

	counted := 0
	for _, b := range blocks {
		if b.IsActive() {
			counted++
		}
	}
	if counted != active {
		t.Errorf("Expected %d active blocks, FillTerrain reported %d", counted, active)
	}

	for z := 0; z < voxel.ChunkSize; z++ {
		for x := 0; x < voxel.ChunkSize; x++ {
			h := g.Height(x, z, origin)
			if h < 1 || h >= voxel.WorldHeight {
				t.Fatalf("height %d out of range at (%d,%d)", h, x, z)
			}
			if !blocks.Get(x, h-1, z).IsActive() {
				t.Fatalf("surface cell at (%d,%d,%d) is air", x, h-1, z)
			}
			if h != g.HeightAt(origin.X+x, origin.Z+z) {
				t.Fatalf("Height and HeightAt disagree at (%d,%d)", x, z)
			}
		}
	}
}

func TestRiverStrengthZeroInMountains(t *testing.T) {
	cfg := config.Default().Generator
	cfg.BiomeScale = 0.02
	cfg.RiverScale = 0.02
	g := NewGenerator(cfg)

	var mountains, rivers int
	for z := -200; z < 200; z += 5 {
		for x := -200; x < 200; x += 5 {
			s := g.RiverStrength(x, z, voxel.BlockPos{})
			if s < 0 || s > 1 {
				t.Fatalf("river strength %f out of range at (%d,%d)", s, x, z)
			}
			if s > 0 {
				rivers++
			}
			if g.DominantBiome(x, z, voxel.BlockPos{}) != Mountains {
				continue
			}
			mountains++
			if s != 0 {
				t.Fatalf("Expected no river in mountains at (%d,%d), got %f", x, z, s)
			}
		}
	}
	t.Logf("sampled %d mountain columns, %d river columns", mountains, rivers)
}

func TestBiomeInfluencesSumToOne(t *testing.T) {
	g := testGenerator(9)
	origin := voxel.BlockPos{X: 512, Z: -96}
	for i := 0; i < 16; i++ {
		inf := g.BiomeInfluences(i*3, i*5, origin)
		if len(inf) == 0 {
			t.Fatal("Expected at least one influence")
		}
		sum := 0.0
		for _, b := range inf {
			sum += b.Weight
		}
		if math.Abs(sum-1) > 1e-9 {
			t.Errorf("Expected weights to sum to 1, got %f", sum)
		}
	}
}

func TestRiversOnlyCarve(t *testing.T) {
	g := testGenerator(11)
	for z := -300; z < 300; z += 3 {
		for x := -300; x < 300; x += 3 {
			weights, dominant := g.influences(x, z)
			base := g.baseHeight(x, z)
			natural := 0.0
			for b, w := range weights {
				natural += w * Biome(b).shapeHeight(base, g.cfg.WaterLevel)
			}
			col := g.column(x, z)
			if col.biome != dominant {
				t.Fatalf("column biome %v differs from dominant %v", col.biome, dominant)
			}
			if float64(col.height) > math.Max(math.Floor(natural), 1) {
				t.Fatalf("river raised terrain at (%d,%d): %d > %f", x, z, col.height, natural)
			}
		}
	}
}

func TestDesertColumnMaterials(t *testing.T) {
	g := testGenerator(3)
	var blocks voxel.Blocks
	col := column{biome: Desert, height: 80, depth: g.subsurfaceDepth(Desert, 0, 0)}
	if col.depth != 3 {
		t.Fatalf("Expected desert subsurface depth 3, got %d", col.depth)
	}

	g.fillColumn(&blocks, 5, 6, col)

	if got := blocks.Get(5, 79, 6); got != voxel.Sand {
		t.Errorf("Expected sand surface, got %v", got)
	}
	for y := 76; y < 79; y++ {
		if got := blocks.Get(5, y, 6); got != voxel.Sand {
			t.Errorf("Expected sand at y=%d, got %v", y, got)
		}
	}
	for y := 0; y < 76; y++ {
		if got := blocks.Get(5, y, 6); got != voxel.Stone {
			t.Fatalf("Expected stone at y=%d, got %v", y, got)
		}
	}
	if got := blocks.Get(5, 80, 6); got != voxel.Air {
		t.Errorf("Expected air above the surface, got %v", got)
	}
}

func TestRiverColumnIsFlooded(t *testing.T) {
	g := testGenerator(3)
	water := g.WaterLevel()
	var blocks voxel.Blocks
	col := column{biome: Plains, height: water - 5, river: 0.7, depth: 2}

	active := g.fillColumn(&blocks, 0, 0, col)
	if active != water {
		t.Errorf("Expected %d active cells, got %d", water, active)
	}
	if got := blocks.Get(0, col.height-1, 0); got != voxel.Stone {
		t.Errorf("Expected stone river bed, got %v", got)
	}
	for y := col.height - 3; y < col.height-1; y++ {
		if got := blocks.Get(0, y, 0); got != voxel.Gravel {
			t.Errorf("Expected gravel at y=%d, got %v", y, got)
		}
	}
	for y := col.height; y < water; y++ {
		if got := blocks.Get(0, y, 0); got != voxel.Water {
			t.Errorf("Expected water at y=%d, got %v", y, got)
		}
	}
	if got := blocks.Get(0, water, 0); got != voxel.Air {
		t.Errorf("Expected air at the water level, got %v", got)
	}
}

func TestSurfaceRules(t *testing.T) {
	snow := config.Default().Generator.SnowLine
	if Mountains.surface(snow+10, snow) != voxel.Snow {
		t.Error("high mountains should be snow capped")
	}
	if Mountains.surface(snow-10, snow) != voxel.Grass {
		t.Error("low mountains should be grass")
	}
	if Tundra.surface(70, snow) != voxel.Snow || Desert.surface(70, snow) != voxel.Sand || Forest.surface(70, snow) != voxel.Grass {
		t.Error("unexpected biome surface")
	}
}

func TestTreePlacement(t *testing.T) {
	g := testGenerator(5)
	col := column{biome: Forest, height: g.WaterLevel() + 10, depth: 2}

	// Find a column whose draw succeeds.
	wx, wz, found := 0, 0, false
	for i := 0; i < 10000 && !found; i++ {
		if unitDraw(g.treeSeed, i, -i) < Forest.treeChance() {
			wx, wz, found = i, -i, true
		}
	}
	if !found {
		t.Fatal("no successful tree draw in 10000 columns")
	}

	var blocks voxel.Blocks
	written := g.placeTree(&blocks, 8, 8, col, wx, wz)
	if written == 0 {
		t.Fatal("Expected a tree to be written")
	}

	trunk := 0
	for y := col.height; y < voxel.WorldHeight && blocks.Get(8, y, 8) == voxel.Logs; y++ {
		trunk++
	}
	if trunk < 4 || trunk > 6 {
		t.Errorf("Expected trunk height in [4,6], got %d", trunk)
	}
	if got := blocks.Get(8, col.height+trunk, 8); got != voxel.Leaves {
		t.Errorf("Expected leaves above the trunk, got %v", got)
	}

	// Same column with a river or below the water line never grows a tree.
	var none voxel.Blocks
	if g.placeTree(&none, 8, 8, column{biome: Forest, height: col.height, river: 0.2}, wx, wz) != 0 {
		t.Error("river columns must not grow trees")
	}
	if g.placeTree(&none, 8, 8, column{biome: Forest, height: g.WaterLevel()}, wx, wz) != 0 {
		t.Error("columns at the water level must not grow trees")
	}
	if g.placeTree(&none, 8, 8, column{biome: Desert, height: col.height}, wx, wz) != 0 {
		t.Error("deserts must not grow trees")
	}
}

func TestTreeCanopyIsClipped(t *testing.T) {
	g := testGenerator(5)
	col := column{biome: Forest, height: g.WaterLevel() + 10}
	for i := 0; i < 10000; i++ {
		if unitDraw(g.treeSeed, i, i) < Forest.treeChance() {
			var blocks voxel.Blocks
			// A corner column must not panic and still writes its trunk.
			if g.placeTree(&blocks, 0, voxel.ChunkSize-1, col, i, i) == 0 {
				t.Error("Expected a clipped tree")
			}
			return
		}
	}
	t.Fatal("no successful tree draw")
}

func TestUnitDrawRange(t *testing.T) {
	for i := -500; i < 500; i++ {
		v := unitDraw(99, i, i*31)
		if v < 0 || v >= 1 {
			t.Fatalf("draw %f out of [0,1)", v)
		}
		if v != unitDraw(99, i, i*31) {
			t.Fatal("draws must be deterministic")
		}
	}
}
