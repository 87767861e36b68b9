package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const octocatGist = `{
  "url": "https://api.github.com/gists/6cad326836d38bd3a7ae",
  "forks_url": "https://api.github.com/gists/6cad326836d38bd3a7ae/forks",
  "commits_url": "https://api.github.com/gists/6cad326836d38bd3a7ae/commits",
  "id": "6cad326836d38bd3a7ae",
  "node_id": "MDQ6R2lzdDZjYWQzMjY4MzZkMzhiZDNhN2Fl",
  "git_pull_url": "https://gist.github.com/6cad326836d38bd3a7ae.git",
  "git_push_url": "https://gist.github.com/6cad326836d38bd3a7ae.git",
  "html_url": "https://gist.github.com/octocat/6cad326836d38bd3a7ae",
  "files": {
    "hello_world.rb": {
      "filename": "hello_world.rb",
      "type": "application/x-ruby",
      "language": "Ruby",
      "raw_url": "https://gist.githubusercontent.com/octocat/6cad326836d38bd3a7ae/raw/hello_world.rb",
      "size": 175
    },
    "notes.txt": {
      "filename": "notes.txt",
      "type": "text/plain",
      "language": null,
      "raw_url": "https://gist.githubusercontent.com/octocat/6cad326836d38bd3a7ae/raw/notes.txt",
      "size": 25
    }
  },
  "public": true,
  "created_at": "2014-10-01T16:19:34Z",
  "updated_at": "2024-01-14T06:42:08Z",
  "description": null,
  "comments": 281,
  "user": null,
  "comments_url": "https://api.github.com/gists/6cad326836d38bd3a7ae/comments",
  "owner": {"login": "octocat", "id": 583231, "type": "User", "site_admin": false},
  "truncated": false
}`

func TestGistDecode(t *testing.T) {
	var gist Gist
	require.NoError(t, json.Unmarshal([]byte(octocatGist), &gist))

	assert.Equal(t, "6cad326836d38bd3a7ae", gist.ID)
	assert.Equal(t, 2, gist.NbFiles())
	assert.Equal(t, int64(200), gist.Size())
	assert.Nil(t, gist.Description)
	assert.Nil(t, gist.User)
	assert.Nil(t, gist.Files["notes.txt"].Language)
	require.NotNil(t, gist.Owner)
	assert.Equal(t, int64(583231), gist.Owner.ID)
	assert.Equal(t, 2014, gist.CreatedAt.Year())
}

func TestGistEncodeKeepsNullableFields(t *testing.T) {
	var gist Gist
	require.NoError(t, json.Unmarshal([]byte(octocatGist), &gist))

	out, err := json.Marshal(gist)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(out, &fields))
	assert.Contains(t, fields, "description")
	assert.Nil(t, fields["description"])
	assert.Contains(t, fields, "user")
	assert.Nil(t, fields["user"])
}

func TestTotalSize(t *testing.T) {
	gists := []*Gist{
		{Files: map[string]GistFile{"a": {Size: 10}, "b": {Size: 5}}},
		nil,
		{Files: map[string]GistFile{"c": {Size: 100}}},
		{},
	}
	assert.Equal(t, uint64(115), TotalSize(gists))
	assert.Equal(t, uint64(0), TotalSize(nil))
}

func TestTotalFiles(t *testing.T) {
	gists := []*Gist{
		{Files: map[string]GistFile{"a": {Size: 10}, "b": {Size: 5}}},
		nil,
		{Files: map[string]GistFile{"c": {Size: 100}}},
		{},
	}
	assert.Equal(t, 3, TotalFiles(gists))
	assert.Equal(t, 0, TotalFiles(nil))
}
