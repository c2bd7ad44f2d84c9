package git

import "testing"

func TestRepoMetadataOutsideRepo(t *testing.T) {
	repo, commit, branch := RepoMetadata(t.TempDir())
	if repo != "" || commit != "" || branch != "" {
		t.Fatalf("expected empty metadata outside a repo, got %q %q %q", repo, commit, branch)
	}
}
