//Package data loads the record tables from a directory of csv files into a
//combat.Store.
package data

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/srliao/hsrcalc/pkg/combat"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

//table file names
const (
	CharacterFile     = "角色資料.csv"
	LightConeFile     = "光錐資料.csv"
	RelicFile         = "儀器資料.csv"
	RatingFile        = "儀器詞條資料.csv"
	PriorityFile      = "角色詞條優先.csv"
	LightConeRecFile  = "光錐推薦.csv"
	RelicRecFile      = "儀器推薦.csv"
	LightConeDescFile = "光錐敘述.csv"
	RelicDescFile     = "儀器敘述.csv"
)

type tableSpec struct {
	file     string
	required bool
	apply    func(l *Loader, s *combat.Store, rows []row)
}

var tables = []tableSpec{
	{CharacterFile, true, (*Loader).applyCharacters},
	{LightConeFile, true, (*Loader).applyLightCones},
	{RelicFile, true, (*Loader).applyRelics},
	{RatingFile, false, (*Loader).applyRatings},
	{PriorityFile, false, (*Loader).applyPriorities},
	{LightConeRecFile, false, (*Loader).applyLightConeRecs},
	{RelicRecFile, false, (*Loader).applyRelicRecs},
	{LightConeDescFile, false, (*Loader).applyLightConeDescs},
	{RelicDescFile, false, (*Loader).applyRelicDescs},
}

//Loader reads every table under Dir. A load either completes or fails as a
//whole; the store is never returned half filled.
type Loader struct {
	Dir string
	Log *zap.SugaredLogger
}

func NewLoader(dir string, log *zap.SugaredLogger) *Loader {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Loader{Dir: dir, Log: log}
}

//Load reads all tables concurrently and builds a fresh store from them
func (l *Loader) Load(ctx context.Context) (*combat.Store, error) {
	results := make([][]row, len(tables))

	g, ctx := errgroup.WithContext(ctx)
	for i, t := range tables {
		i, t := i, t
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rows, err := l.read(t)
			if err != nil {
				return err
			}
			results[i] = rows
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %v", combat.ErrDataLoad, err)
	}

	s := combat.NewStore()
	for i, t := range tables {
		t.apply(l, s, results[i])
		l.Log.Infow("table loaded", "file", t.file, "rows", len(results[i]))
	}
	if err := s.Ready(); err != nil {
		return nil, err
	}
	return s, nil
}

func (l *Loader) read(t tableSpec) ([]row, error) {
	path := filepath.Join(l.Dir, t.file)
	f, err := os.Open(path)
	if err != nil {
		if !t.required && errors.Is(err, fs.ErrNotExist) {
			l.Log.Warnw("optional table missing, using empty table", "file", t.file)
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open %v: %w", t.file, err)
	}
	defer f.Close()

	rows, err := readTable(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %v: %w", t.file, err)
	}
	return rows, nil
}

func (l *Loader) applyCharacters(s *combat.Store, rows []row) {
	for i, r := range rows {
		c, err := parseCharacter(r)
		if err == nil {
			err = s.AddCharacter(c)
		}
		if err != nil {
			l.Log.Warnw("skipping character row", "line", i+2, "err", err)
		}
	}
}

func (l *Loader) applyLightCones(s *combat.Store, rows []row) {
	for i, r := range rows {
		lc, err := parseLightCone(r)
		if err == nil {
			err = s.AddLightCone(lc)
		}
		if err != nil {
			l.Log.Warnw("skipping light cone row", "line", i+2, "err", err)
		}
	}
}

func (l *Loader) applyRelics(s *combat.Store, rows []row) {
	for i, r := range rows {
		rel, err := parseRelic(r)
		if err == nil {
			err = s.AddRelic(rel)
		}
		if err != nil {
			l.Log.Warnw("skipping relic row", "line", i+2, "err", err)
		}
	}
}

func (l *Loader) applyRatings(s *combat.Store, rows []row) {
	for i, r := range rows {
		if err := s.AddSubstatRating(parseRating(r)); err != nil {
			l.Log.Warnw("skipping substat rating row", "line", i+2, "err", err)
		}
	}
}

func (l *Loader) applyPriorities(s *combat.Store, rows []row) {
	for i, r := range rows {
		p := combat.StatPriority{
			Character:  r.text("角色"),
			Priorities: map[string]combat.Priority{r.get("詞條"): combat.ParsePriority(r.get("優先"))},
		}
		if r.get("詞條") == "" {
			l.Log.Warnw("skipping stat priority row", "line", i+2, "err", "empty stat")
			continue
		}
		if err := s.AddStatPriority(p); err != nil {
			l.Log.Warnw("skipping stat priority row", "line", i+2, "err", err)
		}
	}
}

func (l *Loader) applyLightConeRecs(s *combat.Store, rows []row) {
	for i, r := range rows {
		rec := combat.Recommendation{Character: r.text("角色"), Items: splitList(r.text("光錐"))}
		if err := s.AddLightConeRecommendation(rec); err != nil {
			l.Log.Warnw("skipping light cone recommendation row", "line", i+2, "err", err)
		}
	}
}

func (l *Loader) applyRelicRecs(s *combat.Store, rows []row) {
	for i, r := range rows {
		rec := combat.Recommendation{Character: r.text("角色"), Items: splitList(r.text("儀器"))}
		if err := s.AddRelicRecommendation(rec); err != nil {
			l.Log.Warnw("skipping relic recommendation row", "line", i+2, "err", err)
		}
	}
}

func (l *Loader) applyLightConeDescs(s *combat.Store, rows []row) {
	for i, r := range rows {
		if err := s.AddLightConeDesc(r.text("光錐"), r.text("敘述")); err != nil {
			l.Log.Warnw("skipping light cone description row", "line", i+2, "err", err)
		}
	}
}

func (l *Loader) applyRelicDescs(s *combat.Store, rows []row) {
	for i, r := range rows {
		d := combat.RelicDesc{Name: r.text("儀器"), Desc2P: r.text("2P敘述"), Desc4P: r.text("4P敘述")}
		if err := s.AddRelicDesc(d); err != nil {
			l.Log.Warnw("skipping relic description row", "line", i+2, "err", err)
		}
	}
}
