package library_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"stepvault/internal/library"
	"stepvault/internal/logging"
	"stepvault/internal/testsupport"
	"stepvault/internal/vault"
)

func strptr(s string) *string { return &s }

func readSidecar(t *testing.T, v vault.Vault, path string) string {
	t.Helper()
	text, err := v.ReadText(path)
	if err != nil {
		t.Fatalf("read sidecar %s: %v", path, err)
	}
	return text
}

func TestUpsertCreatesSidecarWithAliasesAndTag(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	v := testsupport.NewVault(t, cfg)
	testsupport.Seed(t, v, "Salsa/step.mp4", "media")

	editor := library.NewEditor(v, logging.NewNop())
	_, err := editor.Upsert(context.Background(), "Salsa/step.mp4", library.Patch{
		Dance: strptr("Salsa"),
		Style: strptr("Cuban"),
		Class: strptr("Beginner"),
	})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}

	text := readSidecar(t, v, "Salsa/step.md")
	for _, want := range []string{"dance: Salsa", "style: Cuban", "danceStyle: Cuban", "class: Beginner", "classLevel: Beginner"} {
		if !strings.Contains(text, want) {
			t.Fatalf("sidecar missing %q:\n%s", want, text)
		}
	}
	if !strings.Contains(text, "#DanceLibrary #salsa") {
		t.Fatalf("managed tag line missing:\n%s", text)
	}
}

func TestUpsertRenamesMediaAndSidecarTogether(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	v := testsupport.NewVault(t, cfg)
	testsupport.Seed(t, v, "Salsa/old-name.mp4", "media")
	testsupport.Seed(t, v, "Salsa/old-name.md", "---\ndescription: keep me\n---\n\n#DanceLibrary\nextra notes\n")

	editor := library.NewEditor(v, logging.NewNop())
	newPath, err := editor.Upsert(context.Background(), "Salsa/old-name.mp4", library.Patch{
		StepName: strptr("Cross Body Lead"),
	})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if newPath != "Salsa/cross-body-lead.mp4" {
		t.Fatalf("unexpected new path %q", newPath)
	}
	if vault.Exists(v, "Salsa/old-name.mp4") || vault.Exists(v, "Salsa/old-name.md") {
		t.Fatal("old media or sidecar left behind")
	}

	text := readSidecar(t, v, "Salsa/cross-body-lead.md")
	if !strings.Contains(text, "stepName: Cross Body Lead") {
		t.Fatalf("step name not written:\n%s", text)
	}
	if !strings.Contains(text, "description: keep me") {
		t.Fatalf("existing field lost across rename:\n%s", text)
	}
	if !strings.Contains(text, "extra notes") {
		t.Fatalf("body lost across rename:\n%s", text)
	}
}

func TestUpsertRenameAllocatesCollisionSuffix(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	v := testsupport.NewVault(t, cfg)
	testsupport.Seed(t, v, "Salsa/cross-body-lead.mp4", "occupied")
	testsupport.Seed(t, v, "Salsa/step.mp4", "media")

	editor := library.NewEditor(v, logging.NewNop())
	newPath, err := editor.Upsert(context.Background(), "Salsa/step.mp4", library.Patch{
		StepName: strptr("Cross Body Lead"),
	})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if newPath != "Salsa/cross-body-lead 2.mp4" {
		t.Fatalf("expected collision suffix, got %q", newPath)
	}
	if !vault.Exists(v, "Salsa/cross-body-lead 2.md") {
		t.Fatal("sidecar not written at suffixed path")
	}
}

func TestUpsertIsIdempotentOnRepeatedName(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	v := testsupport.NewVault(t, cfg)
	testsupport.Seed(t, v, "Salsa/taken.mp4", "occupied")
	testsupport.Seed(t, v, "Salsa/step.mp4", "media")

	editor := library.NewEditor(v, logging.NewNop())
	patch := library.Patch{StepName: strptr("Taken")}

	first, err := editor.Upsert(context.Background(), "Salsa/step.mp4", patch)
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if first != "Salsa/taken 2.mp4" {
		t.Fatalf("unexpected first path %q", first)
	}

	second, err := editor.Upsert(context.Background(), first, patch)
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if second != first {
		t.Fatalf("repeated upsert must converge, got %q then %q", first, second)
	}
}

func TestUpsertKeepsOldSidecarOnTargetConflict(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	v := testsupport.NewVault(t, cfg)
	testsupport.Seed(t, v, "Salsa/step.mp4", "media")
	testsupport.Seed(t, v, "Salsa/step.md", "---\ndescription: original\n---\n\n#DanceLibrary\n")
	// A stranger sidecar already squats on the target name.
	testsupport.Seed(t, v, "Salsa/new-name.md", "---\ndescription: squatter\n---\n\n#DanceLibrary\n")

	editor := library.NewEditor(v, logging.NewNop())
	newPath, err := editor.Upsert(context.Background(), "Salsa/step.mp4", library.Patch{
		StepName: strptr("New Name"),
	})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if newPath != "Salsa/new-name.mp4" {
		t.Fatalf("unexpected path %q", newPath)
	}

	// The pre-existing target sidecar was updated in place, and the old
	// sidecar survives so no data is silently destroyed.
	if !vault.Exists(v, "Salsa/step.md") {
		t.Fatal("conflicting old sidecar must be kept")
	}
	text := readSidecar(t, v, "Salsa/new-name.md")
	if !strings.Contains(text, "description: squatter") {
		t.Fatalf("target sidecar content lost:\n%s", text)
	}
	if !strings.Contains(text, "stepName: New Name") {
		t.Fatalf("patch not merged into target sidecar:\n%s", text)
	}
}

// brokenSidecarRenameVault simulates an I/O failure (permissions, disk)
// that hits sidecar renames while media renames still succeed.
type brokenSidecarRenameVault struct {
	vault.Vault
}

func (v brokenSidecarRenameVault) Rename(oldPath, newPath string) error {
	if strings.HasSuffix(oldPath, ".md") {
		return errors.New("rename: permission denied")
	}
	return v.Vault.Rename(oldPath, newPath)
}

func TestUpsertKeepsOldSidecarWhenRenameFails(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	base := testsupport.NewVault(t, cfg)
	testsupport.Seed(t, base, "Salsa/step.mp4", "media")
	testsupport.Seed(t, base, "Salsa/step.md", "---\ndescription: precious notes\n---\n\n#DanceLibrary\n")

	v := brokenSidecarRenameVault{Vault: base}
	editor := library.NewEditor(v, logging.NewNop())
	newPath, err := editor.Upsert(context.Background(), "Salsa/step.mp4", library.Patch{
		StepName: strptr("New Name"),
	})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if newPath != "Salsa/new-name.mp4" {
		t.Fatalf("unexpected path %q", newPath)
	}

	// The stranded sidecar is the only copy of the description; it must
	// survive the orphan cleanup.
	if !vault.Exists(v, "Salsa/step.md") {
		t.Fatal("old sidecar deleted after failed rename")
	}
	old := readSidecar(t, v, "Salsa/step.md")
	if !strings.Contains(old, "description: precious notes") {
		t.Fatalf("old sidecar content lost:\n%s", old)
	}

	fresh := readSidecar(t, v, "Salsa/new-name.md")
	if !strings.Contains(fresh, "stepName: New Name") {
		t.Fatalf("patch not written at new path:\n%s", fresh)
	}
}

func TestUpsertMissingMediaIsNoOp(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	v := testsupport.NewVault(t, cfg)

	editor := library.NewEditor(v, logging.NewNop())
	path, err := editor.Upsert(context.Background(), "Salsa/gone.mp4", library.Patch{
		Description: strptr("whatever"),
	})
	if err != nil {
		t.Fatalf("missing media must not error: %v", err)
	}
	if path != "Salsa/gone.mp4" {
		t.Fatalf("path changed on no-op: %q", path)
	}
	if vault.Exists(v, "Salsa/gone.md") {
		t.Fatal("sidecar must not be created for missing media")
	}
}

func TestUpsertPreservesUnknownFields(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	v := testsupport.NewVault(t, cfg)
	testsupport.Seed(t, v, "Salsa/step.mp4", "media")
	testsupport.Seed(t, v, "Salsa/step.md", "---\ncustomRating: 5 stars\nstepName: Old\n---\n\n#DanceLibrary\n")

	editor := library.NewEditor(v, logging.NewNop())
	if _, err := editor.Upsert(context.Background(), "Salsa/step.mp4", library.Patch{
		StepName: strptr("Old"),
	}); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	text := readSidecar(t, v, "Salsa/step.md")
	if !strings.Contains(text, "customRating: 5 stars") {
		t.Fatalf("unknown field dropped:\n%s", text)
	}
	if strings.Index(text, "customRating") > strings.Index(text, "stepName") {
		t.Fatalf("field order not preserved:\n%s", text)
	}
}

func TestMarkPlayedIncrementsAndStamps(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	v := testsupport.NewVault(t, cfg)
	testsupport.Seed(t, v, "Salsa/step.mp4", "media")
	testsupport.Seed(t, v, "Salsa/step.md", "---\nplayCount: 4\n---\n\n#DanceLibrary\n")

	when := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	editor := library.NewEditor(v, logging.NewNop())
	editor.SetClock(func() time.Time { return when })

	if _, err := editor.MarkPlayed(context.Background(), "Salsa/step.mp4"); err != nil {
		t.Fatalf("mark played: %v", err)
	}

	text := readSidecar(t, v, "Salsa/step.md")
	if !strings.Contains(text, "playCount: 5") {
		t.Fatalf("play count not incremented:\n%s", text)
	}
	if !strings.Contains(text, "lastPlayedAt: 1748779200000") {
		t.Fatalf("last played timestamp wrong:\n%s", text)
	}
}

func TestMarkPlayedStartsFromOneWithoutSidecar(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	v := testsupport.NewVault(t, cfg)
	testsupport.Seed(t, v, "Salsa/step.mp4", "media")

	editor := library.NewEditor(v, logging.NewNop())
	if _, err := editor.MarkPlayed(context.Background(), "Salsa/step.mp4"); err != nil {
		t.Fatalf("mark played: %v", err)
	}

	text := readSidecar(t, v, "Salsa/step.md")
	if !strings.Contains(text, "playCount: 1") {
		t.Fatalf("fresh play count wrong:\n%s", text)
	}
}
