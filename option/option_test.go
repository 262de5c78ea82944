package option

import (
	"database/sql"
	"github.com/stretchr/testify/assert"
	"github.com/viant/sqlgen/metadata/database"
	"github.com/viant/sqlgen/metadata/info"
	"testing"
	"time"
)

func TestOptions(t *testing.T) {
	dialect := &info.Dialect{Product: database.Product{Name: "SQLite"}}
	tx := &sql.Tx{}
	options := Options{dialect, Timeout(time.Second), KeyPolicyIncludeAssigned, tx, DialectName("sqlite3")}
	assert.Equal(t, dialect, options.Dialect())
	assert.Equal(t, "SQLite", options.Product().Name)
	assert.Equal(t, time.Second, options.Timeout())
	assert.Equal(t, KeyPolicyIncludeAssigned, options.KeyPolicy())
	assert.Equal(t, tx, options.Tx())
	assert.Equal(t, "sqlite3", options.DialectName())

	var empty Options
	assert.Nil(t, empty.Dialect())
	assert.Nil(t, empty.Tx())
	assert.Equal(t, time.Duration(0), empty.Timeout())
	assert.Equal(t, KeyPolicyExclude, empty.KeyPolicy())
}

func TestKeyPolicy_IncludesKey(t *testing.T) {
	var testCases = []struct {
		description string
		policy      KeyPolicy
		identity    bool
		expect      bool
	}{
		{description: "exclude identity", policy: KeyPolicyExclude, identity: true, expect: false},
		{description: "exclude assigned", policy: KeyPolicyExclude, identity: false, expect: false},
		{description: "include assigned identity", policy: KeyPolicyIncludeAssigned, identity: true, expect: false},
		{description: "include assigned", policy: KeyPolicyIncludeAssigned, identity: false, expect: true},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, testCase.policy.IncludesKey(testCase.identity), testCase.description)
	}
}

func TestAssign(t *testing.T) {
	var tx *sql.Tx
	var timeout Timeout
	var policy KeyPolicy
	expectTx := &sql.Tx{}
	assigned := Assign([]Option{nil, Timeout(time.Minute), expectTx}, &tx, &timeout, &policy)
	assert.True(t, assigned)
	assert.Equal(t, expectTx, tx)
	assert.Equal(t, Timeout(time.Minute), timeout)
	assert.Equal(t, KeyPolicy(""), policy)
	assert.False(t, Assign(nil, &tx))
}
