// Package memory provides map-backed implementations of the repository
// interfaces. It mirrors the Postgres repositories closely enough to back the
// full service stack in tests and local development without a database.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"webuild-dashboard/internal/data/entity"
	"webuild-dashboard/internal/data/repository"

	"github.com/google/uuid"
)

// NewRepository returns a repository set backed by a single in-memory store.
func NewRepository() *repository.Repository {
	s := &store{
		users:         make(map[uuid.UUID]entity.User),
		sessions:      make(map[uuid.UUID]entity.Session),
		verifications: make(map[uuid.UUID]entity.EmailVerification),
		projects:      make(map[uuid.UUID]entity.Project),
		tasks:         make(map[uuid.UUID]entity.Task),
		resources:     make(map[uuid.UUID]entity.Resource),
		clients:       make(map[uuid.UUID]entity.Client),
		equipment:     make(map[uuid.UUID]entity.Equipment),
	}

	return &repository.Repository{
		User:         &userRepo{s},
		Session:      &sessionRepo{s},
		Verification: &verificationRepo{s},
		Project:      &projectRepo{s},
		Task:         &taskRepo{s},
		Resource:     &resourceRepo{s},
		Client:       &clientRepo{s},
		Activity:     &activityRepo{s},
		Document:     &documentRepo{s},
		Equipment:    &equipmentRepo{s},
	}
}

type store struct {
	mu            sync.RWMutex
	users         map[uuid.UUID]entity.User
	sessions      map[uuid.UUID]entity.Session
	verifications map[uuid.UUID]entity.EmailVerification
	projects      map[uuid.UUID]entity.Project
	tasks         map[uuid.UUID]entity.Task
	resources     map[uuid.UUID]entity.Resource
	clients       map[uuid.UUID]entity.Client
	activities    []entity.Activity
	documents     []entity.Document
	equipment     map[uuid.UUID]entity.Equipment
}

// ---------- users ----------

type userRepo struct{ s *store }

func (r *userRepo) Create(_ context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if u.Username == user.Username {
			return fmt.Errorf("username %s already exists", user.Username)
		}
		if u.Email == user.Email {
			return fmt.Errorf("email %s already exists", user.Email)
		}
	}

	r.s.users[user.ID] = *user
	return nil
}

func (r *userRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	if u, ok := r.s.users[id]; ok && u.DeletedAt == nil {
		cp := u
		return &cp, nil
	}
	return nil, nil
}

func (r *userRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range r.s.users {
		if u.Email == email && u.DeletedAt == nil {
			cp := u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *userRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range r.s.users {
		if u.Username == username && u.DeletedAt == nil {
			cp := u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *userRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var users []*entity.User
	for _, u := range r.s.users {
		if u.DeletedAt == nil {
			cp := u
			users = append(users, &cp)
		}
	}
	if offset >= len(users) {
		return nil, nil
	}
	users = users[offset:]
	if limit > 0 && limit < len(users) {
		users = users[:limit]
	}
	return users, nil
}

func (r *userRepo) FindByRole(_ context.Context, role entity.Role) ([]*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var users []*entity.User
	for _, u := range r.s.users {
		if u.Role == role && u.DeletedAt == nil {
			cp := u
			users = append(users, &cp)
		}
	}
	return users, nil
}

func (r *userRepo) CountAll(_ context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.users)), nil
}

func (r *userRepo) SetEmailVerified(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[id]
	if !ok {
		return fmt.Errorf("user %s not found", id.String())
	}
	u.EmailVerified = true
	u.UpdatedAt = time.Now()
	r.s.users[id] = u
	return nil
}

func (r *userRepo) Update(_ context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[user.ID]; !ok {
		return fmt.Errorf("user %s not found", user.ID.String())
	}
	r.s.users[user.ID] = *user
	return nil
}

// ---------- sessions ----------

type sessionRepo struct{ s *store }

func (r *sessionRepo) Create(_ context.Context, session *entity.Session) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.sessions[session.Token] = *session
	return nil
}

func (r *sessionRepo) FindValidSession(_ context.Context, token string) (*entity.Session, error) {
	tok, err := uuid.Parse(token)
	if err != nil {
		return nil, nil
	}

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	sess, ok := r.s.sessions[tok]
	if !ok || sess.RevokedAt != nil || time.Now().After(sess.ExpiresAt) {
		return nil, nil
	}
	cp := sess
	return &cp, nil
}

func (r *sessionRepo) Revoke(_ context.Context, token string) error {
	tok, err := uuid.Parse(token)
	if err != nil {
		return nil
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if sess, ok := r.s.sessions[tok]; ok && sess.RevokedAt == nil {
		now := time.Now()
		sess.RevokedAt = &now
		r.s.sessions[tok] = sess
	}
	return nil
}

func (r *sessionRepo) RevokeAllUserSessions(_ context.Context, userID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	now := time.Now()
	for tok, sess := range r.s.sessions {
		if sess.UserID == userID && sess.RevokedAt == nil {
			sess.RevokedAt = &now
			r.s.sessions[tok] = sess
		}
	}
	return nil
}

func (r *sessionRepo) CleanExpiredSessions(_ context.Context) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for tok, sess := range r.s.sessions {
		if time.Now().After(sess.ExpiresAt) {
			delete(r.s.sessions, tok)
		}
	}
	return nil
}

// ---------- email verifications ----------

type verificationRepo struct{ s *store }

func (r *verificationRepo) Create(_ context.Context, v *entity.EmailVerification) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for id, existing := range r.s.verifications {
		if existing.UserID == v.UserID {
			delete(r.s.verifications, id)
		}
	}
	r.s.verifications[v.ID] = *v
	return nil
}

func (r *verificationRepo) Consume(_ context.Context, tokenHash string) (*entity.EmailVerification, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for id, v := range r.s.verifications {
		if v.TokenHash == tokenHash {
			delete(r.s.verifications, id)
			cp := v
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *verificationRepo) DeleteForUser(_ context.Context, userID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for id, v := range r.s.verifications {
		if v.UserID == userID {
			delete(r.s.verifications, id)
		}
	}
	return nil
}

func (r *verificationRepo) CleanExpired(_ context.Context) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for id, v := range r.s.verifications {
		if time.Now().After(v.ExpiresAt) {
			delete(r.s.verifications, id)
		}
	}
	return nil
}

// ---------- projects ----------

type projectRepo struct{ s *store }

func (r *projectRepo) Create(_ context.Context, project *entity.Project) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.projects[project.ID] = *project
	return nil
}

func (r *projectRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Project, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	if p, ok := r.s.projects[id]; ok && p.DeletedAt == nil {
		cp := p
		return &cp, nil
	}
	return nil, nil
}

func (r *projectRepo) FindAll(_ context.Context) ([]*entity.Project, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var projects []*entity.Project
	for _, p := range r.s.projects {
		if p.DeletedAt == nil {
			cp := p
			projects = append(projects, &cp)
		}
	}
	return projects, nil
}

func (r *projectRepo) Update(_ context.Context, project *entity.Project) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.projects[project.ID]; !ok {
		return fmt.Errorf("project %s not found", project.ID.String())
	}
	r.s.projects[project.ID] = *project
	return nil
}

// ---------- tasks ----------

type taskRepo struct{ s *store }

func (r *taskRepo) Create(_ context.Context, task *entity.Task) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.tasks[task.ID] = *task
	return nil
}

func (r *taskRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Task, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	if t, ok := r.s.tasks[id]; ok && t.DeletedAt == nil {
		cp := t
		return &cp, nil
	}
	return nil, nil
}

func (r *taskRepo) FindAll(_ context.Context) ([]*entity.Task, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var tasks []*entity.Task
	for _, t := range r.s.tasks {
		if t.DeletedAt == nil {
			cp := t
			tasks = append(tasks, &cp)
		}
	}
	return tasks, nil
}

func (r *taskRepo) FindByProject(_ context.Context, projectID uuid.UUID) ([]*entity.Task, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var tasks []*entity.Task
	for _, t := range r.s.tasks {
		if t.ProjectID == projectID && t.DeletedAt == nil {
			cp := t
			tasks = append(tasks, &cp)
		}
	}
	return tasks, nil
}

func (r *taskRepo) Update(_ context.Context, task *entity.Task) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.tasks[task.ID]; !ok {
		return fmt.Errorf("task %s not found", task.ID.String())
	}
	r.s.tasks[task.ID] = *task
	return nil
}

// ---------- resources ----------

type resourceRepo struct{ s *store }

func (r *resourceRepo) Create(_ context.Context, resource *entity.Resource) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.resources[resource.ID] = *resource
	return nil
}

func (r *resourceRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Resource, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	if res, ok := r.s.resources[id]; ok && res.DeletedAt == nil {
		cp := res
		return &cp, nil
	}
	return nil, nil
}

func (r *resourceRepo) FindByProject(_ context.Context, projectID uuid.UUID) (*entity.Resource, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, res := range r.s.resources {
		if res.ProjectID == projectID && res.DeletedAt == nil {
			cp := res
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *resourceRepo) FindAll(_ context.Context) ([]*entity.Resource, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var resources []*entity.Resource
	for _, res := range r.s.resources {
		if res.DeletedAt == nil {
			cp := res
			resources = append(resources, &cp)
		}
	}
	return resources, nil
}

func (r *resourceRepo) Update(_ context.Context, resource *entity.Resource) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.resources[resource.ID]; !ok {
		return fmt.Errorf("resource %s not found", resource.ID.String())
	}
	r.s.resources[resource.ID] = *resource
	return nil
}

// ---------- clients ----------

type clientRepo struct{ s *store }

func (r *clientRepo) Create(_ context.Context, client *entity.Client) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, c := range r.s.clients {
		if c.Email == client.Email {
			return fmt.Errorf("client email %s already exists", client.Email)
		}
	}
	r.s.clients[client.ID] = *client
	return nil
}

func (r *clientRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Client, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	if c, ok := r.s.clients[id]; ok {
		cp := c
		return &cp, nil
	}
	return nil, nil
}

func (r *clientRepo) FindByEmail(_ context.Context, email string) (*entity.Client, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, c := range r.s.clients {
		if c.Email == email {
			cp := c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *clientRepo) FindAll(_ context.Context) ([]*entity.Client, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var clients []*entity.Client
	for _, c := range r.s.clients {
		cp := c
		clients = append(clients, &cp)
	}
	return clients, nil
}

// ---------- activities ----------

type activityRepo struct{ s *store }

func (r *activityRepo) Create(_ context.Context, activity *entity.Activity) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.activities = append(r.s.activities, *activity)
	return nil
}

func (r *activityRepo) FindAll(_ context.Context) ([]*entity.Activity, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	activities := make([]*entity.Activity, 0, len(r.s.activities))
	for i := len(r.s.activities) - 1; i >= 0; i-- {
		cp := r.s.activities[i]
		activities = append(activities, &cp)
	}
	return activities, nil
}

func (r *activityRepo) FindRecent(ctx context.Context, limit int) ([]*entity.Activity, error) {
	activities, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if limit > 0 && limit < len(activities) {
		activities = activities[:limit]
	}
	return activities, nil
}

// ---------- documents ----------

type documentRepo struct{ s *store }

func (r *documentRepo) Create(_ context.Context, doc *entity.Document) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.documents = append(r.s.documents, *doc)
	return nil
}

func (r *documentRepo) FindByProject(_ context.Context, projectID uuid.UUID) ([]*entity.Document, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var docs []*entity.Document
	for _, d := range r.s.documents {
		if d.ProjectID == projectID {
			cp := d
			docs = append(docs, &cp)
		}
	}
	return docs, nil
}

// ---------- equipment ----------

type equipmentRepo struct{ s *store }

func (r *equipmentRepo) Create(_ context.Context, eq *entity.Equipment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.equipment[eq.ID] = *eq
	return nil
}

func (r *equipmentRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Equipment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	if e, ok := r.s.equipment[id]; ok {
		cp := e
		return &cp, nil
	}
	return nil, nil
}

func (r *equipmentRepo) FindAll(_ context.Context) ([]*entity.Equipment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var list []*entity.Equipment
	for _, e := range r.s.equipment {
		cp := e
		list = append(list, &cp)
	}
	return list, nil
}

func (r *equipmentRepo) Update(_ context.Context, eq *entity.Equipment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.equipment[eq.ID]; !ok {
		return fmt.Errorf("equipment %s not found", eq.ID.String())
	}
	r.s.equipment[eq.ID] = *eq
	return nil
}
