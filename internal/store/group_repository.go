package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ulmaulana/FHETalk-sub001/internal/logger"
	"github.com/ulmaulana/FHETalk-sub001/models"
)

type groupRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewGroupRepository returns the SQLite-backed [GroupRepository].
func NewGroupRepository(db *DB, log *logger.Logger) GroupRepository {
	return &groupRepository{db: db, logger: log}
}

func (r *groupRepository) SaveGroups(ctx context.Context, groups ...models.Group) error {
	for _, g := range groups {
		query, args, err := buildUpsertGroupQuery(
			g.ID,
			g.Name,
			strings.ToLower(g.Creator),
			encodeMembers(g.Members),
			g.CreatedAt.Unix(),
		)
		if err != nil {
			return fmt.Errorf("build group upsert: %w", err)
		}

		if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
			r.logger.Err(err).Uint64("group_id", g.ID).Msg("failed to cache group")
			return fmt.Errorf("save group %d: %w", g.ID, err)
		}
	}

	return nil
}

func (r *groupRepository) GetGroups(ctx context.Context) ([]models.Group, error) {
	query, args, err := buildSelectGroupsQuery()
	if err != nil {
		return nil, fmt.Errorf("build groups select: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query groups: %w", err)
	}
	defer rows.Close()

	var groups []models.Group
	for rows.Next() {
		var (
			g         models.Group
			members   string
			createdAt int64
		)
		if err = rows.Scan(&g.ID, &g.Name, &g.Creator, &members, &createdAt); err != nil {
			return nil, fmt.Errorf("scan group row: %w", err)
		}

		g.Members = decodeMembers(members)
		g.CreatedAt = time.Unix(createdAt, 0)
		groups = append(groups, g)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate group rows: %w", err)
	}

	return groups, nil
}

// Members are stored as a comma-joined lowercase list; addresses never
// contain commas.
func encodeMembers(members []string) string {
	lowered := make([]string, len(members))
	for i, m := range members {
		lowered[i] = strings.ToLower(m)
	}
	return strings.Join(lowered, ",")
}

func decodeMembers(encoded string) []string {
	if encoded == "" {
		return nil
	}
	return strings.Split(encoded, ",")
}
