package jobs

import (
	"context"

	"golang.org/x/sync/errgroup"

	"jobmate/job-service/internal/model"
)

// resolveSkills fans out one Skill-service call per id and gathers the
// results into slots matching the input positions, so the returned order
// is the input order regardless of completion order.
func (s *Service) resolveSkills(ctx context.Context, skillIDs []int64) ([]model.SkillRef, error) {
	skills := make([]model.SkillRef, len(skillIDs))

	g, gctx := errgroup.WithContext(ctx)
	for i, id := range skillIDs {
		i, id := i, id
		g.Go(func() error {
			skill, err := s.deps.SkillNames.Resolve(gctx, id)
			if err != nil {
				return err
			}
			skills[i] = model.SkillRef{ID: id, Name: skill.Name}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return skills, nil
}

// enrichListItem resolves the job's location triple and skill names for a
// listing. Jobs without skill links get no Skills slice at all, which keeps
// the skills key out of the serialized record.
func (s *Service) enrichListItem(ctx context.Context, job model.Job) (model.JobListItem, error) {
	item := model.JobListItem{Job: job}

	location, err := s.deps.Locations.Resolve(ctx, job.CityID)
	if err != nil {
		return item, err
	}
	item.City = location.Name
	item.State = location.State.Name
	item.Country = location.State.Country.Name

	skillIDs, err := s.deps.Skills.SkillIDsByJob(ctx, job.ID)
	if err != nil {
		return item, err
	}
	if len(skillIDs) == 0 {
		return item, nil
	}

	names := make([]string, len(skillIDs))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range skillIDs {
		i, id := i, id
		g.Go(func() error {
			skill, err := s.deps.SkillNames.Resolve(gctx, id)
			if err != nil {
				return err
			}
			names[i] = skill.Name
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return item, err
	}

	item.Skills = names
	return item, nil
}

// enrichAll runs every job's enrichment pipeline concurrently, writing each
// result into the slot of its source job so the page order is preserved.
func (s *Service) enrichAll(ctx context.Context, records []model.Job) ([]model.JobListItem, error) {
	items := make([]model.JobListItem, len(records))

	g, gctx := errgroup.WithContext(ctx)
	for i := range records {
		i := i
		g.Go(func() error {
			item, err := s.enrichListItem(gctx, records[i])
			if err != nil {
				return err
			}
			items[i] = item
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return items, nil
}
