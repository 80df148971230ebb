package catalog_test

import (
	"context"
	"errors"
	"testing"

	"jobmate/job-service/internal/apperr"
	"jobmate/job-service/internal/catalog"
	"jobmate/job-service/internal/model"
)

type fakeAuthz struct {
	err   error
	calls int
}

func (f *fakeAuthz) Authorize(ctx context.Context, userID int64, credential string) error {
	f.calls++
	return f.err
}

func denyAdmin() *fakeAuthz {
	return &fakeAuthz{err: apperr.E(apperr.Unauthorized, "Not an admin", nil)}
}

// ─── Job titles ─────────────────────────────────────────────────────────────

type fakeJobTitles struct {
	rows    map[int64]model.JobTitle
	nextID  int64
	findErr error
}

func newFakeJobTitles() *fakeJobTitles {
	return &fakeJobTitles{rows: map[int64]model.JobTitle{}, nextID: 1}
}

func (f *fakeJobTitles) Create(ctx context.Context, title string) (*model.JobTitle, error) {
	t := model.JobTitle{ID: f.nextID, Title: title}
	f.rows[t.ID] = t
	f.nextID++
	return &t, nil
}

func (f *fakeJobTitles) FindByID(ctx context.Context, id int64) (*model.JobTitle, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	t, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (f *fakeJobTitles) FindByTitle(ctx context.Context, title string) (*model.JobTitle, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, t := range f.rows {
		if t.Title == title {
			return &t, nil
		}
	}
	return nil, nil
}

func (f *fakeJobTitles) Search(ctx context.Context, title string) ([]model.JobTitle, error) {
	out := make([]model.JobTitle, 0)
	for _, t := range f.rows {
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeJobTitles) UpdateByID(ctx context.Context, id int64, title string) (*model.JobTitle, error) {
	t := f.rows[id]
	t.Title = title
	f.rows[id] = t
	return &t, nil
}

func (f *fakeJobTitles) Delete(ctx context.Context, id int64) error {
	delete(f.rows, id)
	return nil
}

func TestJobTitleCreate_RejectsDuplicate(t *testing.T) {
	titles := newFakeJobTitles()
	svc := catalog.NewJobTitleService(titles, &fakeAuthz{}, &fakeAuthz{})

	if _, err := svc.Create(context.Background(), "Backend Engineer", 1, "tok"); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := svc.Create(context.Background(), "Backend Engineer", 1, "tok")
	if apperr.KindOf(err) != apperr.BadRequest {
		t.Errorf("duplicate create kind = %v, want BadRequest", apperr.KindOf(err))
	}
	if apperr.Message(err) != "Job title already exists" {
		t.Errorf("message = %q", apperr.Message(err))
	}
}

func TestJobTitleUpdate_RequiresAdmin(t *testing.T) {
	titles := newFakeJobTitles()
	member := &fakeAuthz{}
	svc := catalog.NewJobTitleService(titles, member, denyAdmin())
	svc2 := catalog.NewJobTitleService(titles, member, member)
	created, _ := svc2.Create(context.Background(), "SRE", 1, "tok")

	_, err := svc.Update(context.Background(), created.ID, "Platform SRE", 1, "tok")
	if apperr.KindOf(err) != apperr.Unauthorized {
		t.Errorf("kind = %v, want Unauthorized", apperr.KindOf(err))
	}
	if titles.rows[created.ID].Title != "SRE" {
		t.Error("title should be unchanged after a rejected update")
	}
}

func TestJobTitleUpdate_MissingIsBadRequest(t *testing.T) {
	svc := catalog.NewJobTitleService(newFakeJobTitles(), &fakeAuthz{}, &fakeAuthz{})

	_, err := svc.Update(context.Background(), 404, "anything", 1, "tok")
	if apperr.KindOf(err) != apperr.BadRequest {
		t.Errorf("kind = %v, want BadRequest", apperr.KindOf(err))
	}
	if apperr.Message(err) != "Job title does not exist" {
		t.Errorf("message = %q", apperr.Message(err))
	}
}

func TestJobTitleCreate_StoreFailureIsOpaqueInternal(t *testing.T) {
	titles := newFakeJobTitles()
	titles.findErr = errors.New("connection reset by peer")
	svc := catalog.NewJobTitleService(titles, &fakeAuthz{}, &fakeAuthz{})

	_, err := svc.Create(context.Background(), "QA", 1, "tok")
	if apperr.KindOf(err) != apperr.Internal {
		t.Fatalf("kind = %v, want Internal", apperr.KindOf(err))
	}
	if apperr.Message(err) != "Error creating job title" {
		t.Errorf("message = %q, want the fixed one", apperr.Message(err))
	}
}

// ─── Experience levels ──────────────────────────────────────────────────────

type fakeLevels struct {
	rows   map[int64]model.ExperienceLevel
	nextID int64
}

func newFakeLevels() *fakeLevels {
	return &fakeLevels{rows: map[int64]model.ExperienceLevel{}, nextID: 1}
}

func (f *fakeLevels) Create(ctx context.Context, name string, minYears, maxYears int) (*model.ExperienceLevel, error) {
	e := model.ExperienceLevel{ID: f.nextID, Name: name, MinYears: minYears, MaxYears: maxYears}
	f.rows[e.ID] = e
	f.nextID++
	return &e, nil
}

func (f *fakeLevels) FindByID(ctx context.Context, id int64) (*model.ExperienceLevel, error) {
	e, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (f *fakeLevels) FindByName(ctx context.Context, name string) (*model.ExperienceLevel, error) {
	for _, e := range f.rows {
		if e.Name == name {
			return &e, nil
		}
	}
	return nil, nil
}

func (f *fakeLevels) Search(ctx context.Context, name string) ([]model.ExperienceLevel, error) {
	out := make([]model.ExperienceLevel, 0)
	for _, e := range f.rows {
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeLevels) UpdateByID(ctx context.Context, id int64, name string, minYears, maxYears int) (*model.ExperienceLevel, error) {
	e := model.ExperienceLevel{ID: id, Name: name, MinYears: minYears, MaxYears: maxYears}
	f.rows[id] = e
	return &e, nil
}

func (f *fakeLevels) Delete(ctx context.Context, id int64) error {
	delete(f.rows, id)
	return nil
}

func TestExperienceLevelCreate_RejectsDuplicateName(t *testing.T) {
	svc := catalog.NewExperienceLevelService(newFakeLevels(), &fakeAuthz{}, &fakeAuthz{})

	if _, err := svc.Create(context.Background(), "Senior", 5, 8, 1, "tok"); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := svc.Create(context.Background(), "Senior", 6, 9, 1, "tok")
	if apperr.KindOf(err) != apperr.BadRequest {
		t.Errorf("kind = %v, want BadRequest", apperr.KindOf(err))
	}
}

func TestExperienceLevelGet_MissingIsNotFound(t *testing.T) {
	svc := catalog.NewExperienceLevelService(newFakeLevels(), &fakeAuthz{}, &fakeAuthz{})

	_, err := svc.Get(context.Background(), 404, 1, "tok")
	if apperr.KindOf(err) != apperr.NotFound {
		t.Errorf("kind = %v, want NotFound", apperr.KindOf(err))
	}
}

func TestExperienceLevelDelete_MissingIsBadRequest(t *testing.T) {
	svc := catalog.NewExperienceLevelService(newFakeLevels(), &fakeAuthz{}, &fakeAuthz{})

	err := svc.Delete(context.Background(), 404, 1, "tok")
	if apperr.KindOf(err) != apperr.BadRequest {
		t.Errorf("kind = %v, want BadRequest", apperr.KindOf(err))
	}
}

func TestExperienceLevelSearch_UsesMemberPolicy(t *testing.T) {
	member := &fakeAuthz{}
	admin := denyAdmin()
	svc := catalog.NewExperienceLevelService(newFakeLevels(), member, admin)

	if _, err := svc.Search(context.Background(), "sen", 1, "tok"); err != nil {
		t.Fatalf("search should pass the member policy: %v", err)
	}
	if member.calls != 1 || admin.calls != 0 {
		t.Errorf("member calls = %d, admin calls = %d; want 1 and 0", member.calls, admin.calls)
	}
}

// ─── Companies ──────────────────────────────────────────────────────────────

type fakeCompanies struct {
	rows   map[int64]model.Company
	nextID int64
}

func newFakeCompanies() *fakeCompanies {
	return &fakeCompanies{rows: map[int64]model.Company{}, nextID: 1}
}

func (f *fakeCompanies) Create(ctx context.Context, in model.Company) (*model.Company, error) {
	in.ID = f.nextID
	f.rows[in.ID] = in
	f.nextID++
	return &in, nil
}

func (f *fakeCompanies) FindByID(ctx context.Context, id int64) (*model.Company, error) {
	c, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (f *fakeCompanies) FindByName(ctx context.Context, name string) (*model.Company, error) {
	for _, c := range f.rows {
		if c.Name == name {
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeCompanies) Search(ctx context.Context, name string) ([]model.Company, error) {
	out := make([]model.Company, 0)
	for _, c := range f.rows {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCompanies) UpdateByID(ctx context.Context, id int64, in model.Company) (*model.Company, error) {
	in.ID = id
	f.rows[id] = in
	return &in, nil
}

func (f *fakeCompanies) Delete(ctx context.Context, id int64) error {
	delete(f.rows, id)
	return nil
}

func TestCompanyCreate_RejectsDuplicateName(t *testing.T) {
	svc := catalog.NewCompanyService(newFakeCompanies(), &fakeAuthz{}, &fakeAuthz{})

	if _, err := svc.Create(context.Background(), model.Company{Name: "Acme"}, 1, "tok"); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := svc.Create(context.Background(), model.Company{Name: "Acme"}, 1, "tok")
	if apperr.KindOf(err) != apperr.BadRequest {
		t.Errorf("kind = %v, want BadRequest", apperr.KindOf(err))
	}
	if apperr.Message(err) != "Company already created" {
		t.Errorf("message = %q", apperr.Message(err))
	}
}

func TestCompanyGet_NoAuthorizationCheck(t *testing.T) {
	member := denyAdmin()
	admin := denyAdmin()
	companies := newFakeCompanies()
	companies.rows[1] = model.Company{ID: 1, Name: "Acme"}
	svc := catalog.NewCompanyService(companies, member, admin)

	company, err := svc.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("public read should not consult any policy: %v", err)
	}
	if company.Name != "Acme" {
		t.Errorf("Name = %q", company.Name)
	}
	if member.calls != 0 || admin.calls != 0 {
		t.Error("no authorizer should be consulted for a public read")
	}
}

func TestCompanyGet_MissingIsNotFound(t *testing.T) {
	svc := catalog.NewCompanyService(newFakeCompanies(), &fakeAuthz{}, &fakeAuthz{})

	_, err := svc.Get(context.Background(), 404)
	if apperr.KindOf(err) != apperr.NotFound {
		t.Errorf("kind = %v, want NotFound", apperr.KindOf(err))
	}
	if apperr.Message(err) != "Company not found" {
		t.Errorf("message = %q", apperr.Message(err))
	}
}

func TestCompanyDelete_RequiresAdmin(t *testing.T) {
	companies := newFakeCompanies()
	companies.rows[1] = model.Company{ID: 1, Name: "Acme"}
	svc := catalog.NewCompanyService(companies, &fakeAuthz{}, denyAdmin())

	err := svc.Delete(context.Background(), 1, 1, "tok")
	if apperr.KindOf(err) != apperr.Unauthorized {
		t.Errorf("kind = %v, want Unauthorized", apperr.KindOf(err))
	}
	if _, ok := companies.rows[1]; !ok {
		t.Error("company should survive a rejected delete")
	}
}
