package sqlstore

import (
	"fmt"
	"strconv"

	"github.com/Badsnus/golf-stats/internal/domain/entity"
)

// Migrations is a list of all gorm migrations for the database, parents first.
var Migrations = []interface{}{
	&entity.Member{},
	&entity.Course{},
	&entity.Round{},
	&entity.Hole{},
}

const (
	ViewPlayerSummary             = "vw_player_summary"
	ViewPlayerHoleAverages        = "vw_player_hole_averages"
	ViewPlayerRecentRounds        = "vw_player_recent_rounds"
	ViewPlayerPerformanceByCourse = "vw_player_performance_by_course"
	ViewPlayerDifferentials       = "vw_player_differentials"
	ViewPlayerHandicapEstimate    = "vw_player_handicap_estimate"
)

// ViewOptions parameterizes the handicap view. Zero values fall back to the defaults.
type ViewOptions struct {
	HandicapWindow int
	HandicapBest   int
	HandicapFactor float64
}

const (
	DefaultHandicapWindow = 20
	DefaultHandicapBest   = 8
	DefaultHandicapFactor = 1.0
)

func (o ViewOptions) withDefaults() ViewOptions {
	if o.HandicapWindow <= 0 {
		o.HandicapWindow = DefaultHandicapWindow
	}
	if o.HandicapBest <= 0 {
		o.HandicapBest = DefaultHandicapBest
	}
	if o.HandicapBest > o.HandicapWindow {
		o.HandicapBest = o.HandicapWindow
	}
	if o.HandicapFactor == 0 {
		o.HandicapFactor = DefaultHandicapFactor
	}
	return o
}

type view struct {
	name  string
	query string
}

// views returns the derived views in creation order; later views may select from earlier ones.
// The SQL is restricted to what both SQLite and PostgreSQL accept.
func views(opts ViewOptions) []view {
	opts = opts.withDefaults()

	return []view{
		{ViewPlayerSummary, `
SELECT m.id AS member_id,
       m.first_name,
       m.last_name,
       COUNT(r.id) AS rounds_played,
       CAST(AVG(r.total_strokes) AS DOUBLE PRECISION) AS avg_score,
       MIN(r.total_strokes) AS best_score,
       MAX(r.date_played) AS last_played
FROM members m
LEFT JOIN rounds r ON r.member_id = m.id
GROUP BY m.id, m.first_name, m.last_name`},

		{ViewPlayerHoleAverages, `
SELECT r.member_id,
       h.hole_number,
       COUNT(h.id) AS holes_played,
       CAST(AVG(h.strokes) AS DOUBLE PRECISION) AS avg_strokes,
       CAST(AVG(h.putts) AS DOUBLE PRECISION) AS avg_putts,
       CAST(AVG(CASE WHEN h.fairway_hit THEN 1.0 WHEN NOT h.fairway_hit THEN 0.0 END) AS DOUBLE PRECISION) AS fairway_pct,
       CAST(AVG(CASE WHEN h.gir THEN 1.0 WHEN NOT h.gir THEN 0.0 END) AS DOUBLE PRECISION) AS gir_pct
FROM holes h
JOIN rounds r ON r.id = h.round_id
GROUP BY r.member_id, h.hole_number`},

		{ViewPlayerRecentRounds, `
SELECT r.member_id,
       r.id AS round_id,
       r.date_played,
       r.course_id,
       c.name AS course_name,
       c.par AS course_par,
       r.total_strokes,
       r.putts,
       r.fairways_hit,
       r.gir,
       r.notes,
       r.total_strokes - c.par AS differential
FROM rounds r
LEFT JOIN courses c ON c.id = r.course_id`},

		{ViewPlayerPerformanceByCourse, `
SELECT r.member_id,
       c.id AS course_id,
       c.name AS course_name,
       c.par AS course_par,
       COUNT(r.id) AS rounds_played,
       CAST(AVG(r.total_strokes) AS DOUBLE PRECISION) AS avg_score,
       MIN(r.total_strokes) AS best_score
FROM rounds r
JOIN courses c ON c.id = r.course_id
GROUP BY r.member_id, c.id, c.name, c.par`},

		{ViewPlayerDifferentials, `
SELECT r.member_id,
       r.id AS round_id,
       r.date_played,
       r.total_strokes,
       c.par AS course_par,
       r.total_strokes - c.par AS differential
FROM rounds r
JOIN courses c ON c.id = r.course_id
WHERE r.total_strokes IS NOT NULL AND c.par IS NOT NULL`},

		{ViewPlayerHandicapEstimate, fmt.Sprintf(`
WITH recent AS (
    SELECT member_id,
           differential,
           ROW_NUMBER() OVER (PARTITION BY member_id ORDER BY date_played DESC, round_id DESC) AS recency,
           COUNT(*) OVER (PARTITION BY member_id) AS eligible
    FROM %s
), best AS (
    SELECT member_id,
           differential,
           eligible,
           ROW_NUMBER() OVER (PARTITION BY member_id ORDER BY differential ASC, recency ASC) AS position
    FROM recent
    WHERE recency <= %d
)
SELECT member_id,
       CAST(AVG(differential) AS DOUBLE PRECISION) * %s AS handicap_index,
       MAX(eligible) AS rounds_eligible,
       COUNT(*) AS rounds_used
FROM best
WHERE position <= %d
GROUP BY member_id`,
			ViewPlayerDifferentials,
			opts.HandicapWindow,
			strconv.FormatFloat(opts.HandicapFactor, 'f', -1, 64),
			opts.HandicapBest,
		)},
	}
}
