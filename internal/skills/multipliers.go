package skills

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sprintsim/backend/internal/models"
)

// MultiplierTable maps (level, area) to daily point output per unit of
// availability. Missing entries read as 0.
type MultiplierTable map[models.SkillLevel]map[models.SkillArea]float64

func (t MultiplierTable) Get(level models.SkillLevel, area models.SkillArea) float64 {
	byArea, ok := t[level]
	if !ok {
		return 0
	}
	return byArea[area]
}

// DefaultMultipliers returns the built-in table used when no CSV is configured.
func DefaultMultipliers() MultiplierTable {
	return MultiplierTable{
		models.LevelJunior: {models.AreaBackend: 0.5, models.AreaFrontend: 0.5, models.AreaFullstack: 0.6, models.AreaQA: 0.5, models.AreaDevops: 0.4, models.AreaMobile: 0.4},
		models.LevelMid:    {models.AreaBackend: 0.8, models.AreaFrontend: 0.8, models.AreaFullstack: 0.9, models.AreaQA: 0.7, models.AreaDevops: 0.6, models.AreaMobile: 0.6},
		models.LevelSenior: {models.AreaBackend: 1.0, models.AreaFrontend: 1.0, models.AreaFullstack: 1.1, models.AreaQA: 0.9, models.AreaDevops: 0.8, models.AreaMobile: 0.8},
		models.LevelLead:   {models.AreaBackend: 1.2, models.AreaFrontend: 1.2, models.AreaFullstack: 1.3, models.AreaQA: 1.0, models.AreaDevops: 1.0, models.AreaMobile: 1.0},
	}
}

// LoadMultipliersCSV reads a table from a CSV with a skill_level column plus
// one column per skill area. Unknown levels are skipped; unparseable or
// missing cells read as 0. Every known level/area pair is present in the
// returned table.
func LoadMultipliersCSV(r io.Reader) (MultiplierTable, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read multipliers header: %w", err)
	}
	col := map[string]int{}
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	levelIdx, ok := col["skill_level"]
	if !ok {
		return nil, fmt.Errorf("multipliers CSV missing skill_level column")
	}

	parsed := MultiplierTable{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read multipliers row: %w", err)
		}
		level := models.SkillLevel(strings.ToLower(strings.TrimSpace(record[levelIdx])))
		if !knownLevel(level) {
			continue
		}
		byArea := map[models.SkillArea]float64{}
		for _, area := range models.AllSkillAreas {
			idx, ok := col[string(area)]
			if !ok || idx >= len(record) {
				continue
			}
			v, err := strconv.ParseFloat(strings.TrimSpace(record[idx]), 64)
			if err != nil || v < 0 {
				continue
			}
			byArea[area] = v
		}
		parsed[level] = byArea
	}

	// Fill out every known level/area pair so lookups never miss.
	table := MultiplierTable{}
	for _, level := range models.AllSkillLevels {
		byArea := map[models.SkillArea]float64{}
		for _, area := range models.AllSkillAreas {
			byArea[area] = parsed.Get(level, area)
		}
		table[level] = byArea
	}
	return table, nil
}

// LoadMultipliersFile loads the table from path, falling back to the built-in
// defaults when path is empty.
func LoadMultipliersFile(path string) (MultiplierTable, error) {
	if strings.TrimSpace(path) == "" {
		return DefaultMultipliers(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open multipliers CSV: %w", err)
	}
	defer f.Close()
	return LoadMultipliersCSV(f)
}

func knownLevel(level models.SkillLevel) bool {
	for _, l := range models.AllSkillLevels {
		if l == level {
			return true
		}
	}
	return false
}
