package config

import (
	"math"
	"testing"
)

func validConfig() Config {
	c := Defaults()
	c.Generator = GeneratorCPU
	return c
}

func TestDefaultsAreValidOnceGeneratorIsSet(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func TestValidateRejectsMissingGenerator(t *testing.T) {
	c := Defaults()
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for unset generator")
	}
}

func TestValidateRejectsShardIndexOutOfRange(t *testing.T) {
	c := validConfig()
	c.ShardCount = 2
	c.ShardIndex = 2
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for shard_index >= shard_count")
	}
}

func TestValidateRejectsZeroDimensions(t *testing.T) {
	c := validConfig()
	c.Dimensions = 0
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for dimensions < 1")
	}
}

func TestValidateRejectsWrongSeedLength(t *testing.T) {
	c := validConfig()
	c.Seeds = []uint64{1, 2, 3}
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for wrong seed length")
	}
}

func TestValidateAcceptsInfiniteAlpha(t *testing.T) {
	c := validConfig()
	c.Alpha = float32(math.Inf(1))
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil for +Inf alpha", err)
	}
}

func TestValidateRejectsGPUOnDemandOverMaxDims(t *testing.T) {
	c := validConfig()
	c.Generator = GeneratorGPU
	c.RandomMode = RandomModeOnDemand
	c.Dimensions = 5
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for on-demand GPU with dimensions > MaxDims")
	}
}

func TestValidateRejectsParquetOutput(t *testing.T) {
	c := validConfig()
	c.OutputEdgesParquet = "out.parquet"
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for unsupported parquet output")
	}
}
