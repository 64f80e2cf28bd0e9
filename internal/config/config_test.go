package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"essentia-backend/internal/config"
)

const minimalYAML = `
server:
  port: 8080
database:
  host: localhost
  user: essentia
  database: essentia
mail:
  from: no-reply@test.com
  operations_mailbox: ops@test.com
jwt:
  secret: 0123456789abcdef0123456789abcdef
storage:
  upload_dir: /tmp/uploads
`

func TestParse_Defaults(t *testing.T) {
	cfg, err := config.Parse([]byte(minimalYAML))
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.Server.GRPCPort)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "mock", cfg.Storage.Type)
	assert.Equal(t, "forum_images", cfg.Storage.ForumBucket)
	assert.Equal(t, "profile_img", cfg.Storage.ProfileBucket)
	assert.Equal(t, int64(5), cfg.Storage.MaxForumImageMB)
	assert.Equal(t, int64(10), cfg.Storage.MaxProfileImageMB)
	assert.Equal(t, int64(100000), cfg.Membership.OfficerCodeBase)
	assert.Equal(t, int64(20000), cfg.Membership.MemberCodeBase)
	assert.Equal(t, "자유", cfg.Forum.FreeCategory)
	assert.Equal(t, 3, cfg.Forum.NonMemberDailyLimit)
	assert.Equal(t, 60, cfg.JWT.AccessTokenExpiry)
	assert.Equal(t, "Members", cfg.Sheets.SheetName)
	assert.Equal(t, "0 0 0 * * *", cfg.Scheduler.SendInterviewReminders)
	assert.Equal(t, "postgres://essentia:@localhost:0/essentia?sslmode=disable", cfg.GetDatabaseConnectionString())
}

func TestParse_EnvOverride(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := config.Parse([]byte(minimalYAML))
	require.NoError(t, err)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"short secret", `
server: {port: 8080}
database: {host: h, user: u, database: d}
mail: {from: a@test.com, operations_mailbox: b@test.com}
jwt: {secret: short}
storage: {upload_dir: /tmp}
`},
		{"firebase storage without project", `
server: {port: 8080}
database: {host: h, user: u, database: d}
mail: {from: a@test.com, operations_mailbox: b@test.com}
jwt: {secret: 0123456789abcdef0123456789abcdef}
storage: {type: firebase}
`},
		{"missing operations mailbox", `
server: {port: 8080}
database: {host: h, user: u, database: d}
mail: {from: a@test.com}
jwt: {secret: 0123456789abcdef0123456789abcdef}
storage: {upload_dir: /tmp}
`},
		{"bad port", `
server: {port: 0}
`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestGetSecurityLevel(t *testing.T) {
	assert.Equal(t, config.SecurityPublic, config.GetSecurityLevel("forum.list"))
	assert.Equal(t, config.SecurityOptional, config.GetSecurityLevel("forum.get"))
	assert.Equal(t, config.SecurityAccess, config.GetSecurityLevel("admin.members.update"))
	assert.Equal(t, config.SecurityAccess, config.GetSecurityLevel("unknown.route"))
}
