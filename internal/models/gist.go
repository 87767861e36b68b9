package models

import (
	"time"
)

// Gist is a public gist as returned by the GitHub REST API.
type Gist struct {
	Url         string              `json:"url"`
	ForksUrl    string              `json:"forks_url"`
	CommitsUrl  string              `json:"commits_url"`
	ID          string              `json:"id"`
	NodeID      string              `json:"node_id"`
	GitPullUrl  string              `json:"git_pull_url"`
	GitPushUrl  string              `json:"git_push_url"`
	HtmlUrl     string              `json:"html_url"`
	Files       map[string]GistFile `json:"files"`
	Public      bool                `json:"public"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
	Description *string             `json:"description"`
	Comments    int                 `json:"comments"`
	User        *GistOwner          `json:"user"`
	CommentsUrl string              `json:"comments_url"`
	Owner       *GistOwner          `json:"owner"`
	Truncated   bool                `json:"truncated"`
}

type GistFile struct {
	Filename string  `json:"filename"`
	Type     string  `json:"type"`
	Language *string `json:"language"`
	RawUrl   string  `json:"raw_url"`
	Size     int64   `json:"size"`
}

type GistOwner struct {
	Login             string `json:"login"`
	ID                int64  `json:"id"`
	NodeID            string `json:"node_id"`
	AvatarUrl         string `json:"avatar_url"`
	GravatarID        string `json:"gravatar_id"`
	Url               string `json:"url"`
	HtmlUrl           string `json:"html_url"`
	FollowersUrl      string `json:"followers_url"`
	FollowingUrl      string `json:"following_url"`
	GistsUrl          string `json:"gists_url"`
	StarredUrl        string `json:"starred_url"`
	SubscriptionsUrl  string `json:"subscriptions_url"`
	OrganizationsUrl  string `json:"organizations_url"`
	ReposUrl          string `json:"repos_url"`
	EventsUrl         string `json:"events_url"`
	ReceivedEventsUrl string `json:"received_events_url"`
	Type              string `json:"type"`
	SiteAdmin         bool   `json:"site_admin"`
}

// NbFiles returns the number of files in the gist.
func (gist *Gist) NbFiles() int {
	return len(gist.Files)
}

// Size returns the sum of the sizes of the gist files, in bytes.
func (gist *Gist) Size() int64 {
	var size int64
	for _, file := range gist.Files {
		size += file.Size
	}
	return size
}

// TotalSize returns the sum of the sizes of every file of every gist.
func TotalSize(gists []*Gist) uint64 {
	var total uint64
	for _, gist := range gists {
		if gist == nil {
			continue
		}
		total += uint64(gist.Size())
	}
	return total
}

// TotalFiles returns the number of files across every gist.
func TotalFiles(gists []*Gist) int {
	total := 0
	for _, gist := range gists {
		if gist == nil {
			continue
		}
		total += gist.NbFiles()
	}
	return total
}
