package config

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.DayLimit != 2000 {
		t.Errorf("DayLimit = %d, want %d", cfg.DayLimit, 2000)
	}
	if cfg.OptimizerIterations != 10000 {
		t.Errorf("OptimizerIterations = %d, want %d", cfg.OptimizerIterations, 10000)
	}
	if cfg.SkillIterations != 1000 {
		t.Errorf("SkillIterations = %d, want %d", cfg.SkillIterations, 1000)
	}
	if cfg.SkillProposalMax != 20 {
		t.Errorf("SkillProposalMax = %d, want %d", cfg.SkillProposalMax, 20)
	}
	if cfg.SkillInitRangeMin != 20.0 || cfg.SkillInitRangeMax != 60.0 {
		t.Errorf("SkillInitRange = [%v, %v], want [20, 60]", cfg.SkillInitRangeMin, cfg.SkillInitRangeMax)
	}

	if cfg.OptimizerAnnealer.T0 != 200.0 || cfg.OptimizerAnnealer.T1 != 10.0 {
		t.Errorf("OptimizerAnnealer = %+v, want {200 10}", cfg.OptimizerAnnealer)
	}
	if cfg.SkillAnnealer.T0 != 3000.0 || cfg.SkillAnnealer.T1 != 600.0 {
		t.Errorf("SkillAnnealer = %+v, want {3000 600}", cfg.SkillAnnealer)
	}
}
