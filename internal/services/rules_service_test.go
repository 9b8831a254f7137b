package services

import (
	"errors"
	"testing"
)

func newRulesFixture() (*RulesService, *fakeSettingsRepo, *fakeVersionRepo) {
	settingsRepo := &fakeSettingsRepo{}
	versionRepo := &fakeVersionRepo{}
	return NewRulesService(settingsRepo, versionRepo), settingsRepo, versionRepo
}

func TestCreateVersionSnapshotsCurrentRules(t *testing.T) {
	svc, settingsRepo, _ := newRulesFixture()

	rules, _ := settingsRepo.GetOrInitRules()
	rules.Security = "Eye protection mandatory at all times."
	rules.SafetyStop = "Three whistle blasts."

	version, err := svc.CreateVersion("summer-2025")
	if err != nil {
		t.Fatalf("CreateVersion() error = %v", err)
	}
	if version.VersionName != "summer-2025" {
		t.Errorf("VersionName = %q", version.VersionName)
	}
	if version.Security != rules.Security || version.SafetyStop != rules.SafetyStop {
		t.Error("snapshot must copy the current rules sections")
	}
}

func TestCreateVersionCapped(t *testing.T) {
	svc, _, versionRepo := newRulesFixture()

	for _, name := range []string{"v1", "v2", "v3"} {
		if _, err := svc.CreateVersion(name); err != nil {
			t.Fatalf("CreateVersion(%s) error = %v", name, err)
		}
	}

	if _, err := svc.CreateVersion("v4"); !errors.Is(err, ErrConflict) {
		t.Errorf("fourth version error = %v, want ErrConflict", err)
	}

	// Deleting one frees a slot.
	if err := svc.DeleteVersion(versionRepo.versions[0].ID.String()); err != nil {
		t.Fatalf("DeleteVersion() error = %v", err)
	}
	if _, err := svc.CreateVersion("v4"); err != nil {
		t.Errorf("CreateVersion() after delete error = %v", err)
	}
}

func TestApplyVersionRestoresRules(t *testing.T) {
	svc, settingsRepo, _ := newRulesFixture()

	rules, _ := settingsRepo.GetOrInitRules()
	rules.FairPlay = "Call your hits."
	version, err := svc.CreateVersion("baseline")
	if err != nil {
		t.Fatalf("CreateVersion() error = %v", err)
	}

	later := "Call your hits, no blind firing."
	if _, err := svc.UpdateRules(UpdateRulesRequest{FairPlay: &later}); err != nil {
		t.Fatalf("UpdateRules() error = %v", err)
	}

	if _, err := svc.ApplyVersion(version.ID.String()); err != nil {
		t.Fatalf("ApplyVersion() error = %v", err)
	}
	current, _ := svc.GetRules()
	if current.FairPlay != "Call your hits." {
		t.Errorf("FairPlay = %q, want the restored snapshot", current.FairPlay)
	}
}

func TestUpdateRulesPartial(t *testing.T) {
	svc, settingsRepo, _ := newRulesFixture()

	rules, _ := settingsRepo.GetOrInitRules()
	rules.Security = "Masks on."
	rules.Pyrotechnics = "None allowed."

	newPyro := "Smoke only, outdoors."
	updated, err := svc.UpdateRules(UpdateRulesRequest{Pyrotechnics: &newPyro})
	if err != nil {
		t.Fatalf("UpdateRules() error = %v", err)
	}
	if updated.Pyrotechnics != newPyro {
		t.Errorf("Pyrotechnics = %q", updated.Pyrotechnics)
	}
	if updated.Security != "Masks on." {
		t.Error("untouched sections must survive a partial update")
	}
}

func TestDeleteVersionNotFound(t *testing.T) {
	svc, _, _ := newRulesFixture()

	if err := svc.DeleteVersion("00000000-0000-0000-0000-000000000000"); !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}
