package database

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jingpengwu/boss/pkg/structs"
)

func TestToSqlQueryEmpty(t *testing.T) {
	where, args := toSqlQuery(&structs.Query{})

	assert.Equal(t, "", where)
	assert.Equal(t, 0, len(args))
}

func TestToSqlQueryJobIDs(t *testing.T) {
	where, args := toSqlQuery(&structs.Query{JobIDs: []int64{4, 5}})

	assert.Equal(t, "WHERE id IN ($1, $2)", where)
	assert.Equal(t, []interface{}{int64(4), int64(5)}, args)
}

func TestToSqlQueryCombined(t *testing.T) {
	where, args := toSqlQuery(&structs.Query{
		JobIDs:   []int64{7},
		Creators: []string{"alice"},
		Statuses: []structs.Status{structs.ACTIVE, structs.DELETED},
	})

	assert.Equal(t, "WHERE id IN ($1) AND creator IN ($2) AND status IN ($3, $4)", where)
	assert.Equal(t, []interface{}{int64(7), "alice", "ACTIVE", "DELETED"}, args)
}
