package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"hostel-admin/internal/model"
	"hostel-admin/internal/repository"
	pkgerrors "hostel-admin/pkg/errors"
)

// ── Mock RoomRepository ──

type mockRoomRepo struct {
	rooms map[string]*model.Room
	seq   int
}

func newMockRoomRepo() *mockRoomRepo {
	return &mockRoomRepo{rooms: make(map[string]*model.Room)}
}

func (m *mockRoomRepo) numberTaken(number, exceptID string) bool {
	for id, r := range m.rooms {
		if id != exceptID && r.RoomNumber == number {
			return true
		}
	}
	return false
}

func (m *mockRoomRepo) Create(_ context.Context, room *model.Room) error {
	if m.numberTaken(room.RoomNumber, "") {
		return &pkgerrors.DuplicateError{Constraint: "uq_rooms_room_number"}
	}
	if room.RoomID == "" {
		m.seq++
		room.RoomID = fmt.Sprintf("room-%d", m.seq)
	}
	m.rooms[room.RoomID] = room
	return nil
}

func (m *mockRoomRepo) GetByID(_ context.Context, id string) (*model.Room, error) {
	if r, ok := m.rooms[id]; ok {
		cp := *r
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRoomRepo) GetByNumber(_ context.Context, roomNumber string) (*model.Room, error) {
	for _, r := range m.rooms {
		if r.RoomNumber == roomNumber {
			cp := *r
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRoomRepo) List(_ context.Context, status string) ([]model.Room, error) {
	var result []model.Room
	for _, r := range m.rooms {
		if status != "" && r.Status != status {
			continue
		}
		result = append(result, *r)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].RoomNumber < result[j].RoomNumber })
	return result, nil
}

func (m *mockRoomRepo) Update(_ context.Context, room *model.Room) error {
	if m.numberTaken(room.RoomNumber, room.RoomID) {
		return &pkgerrors.DuplicateError{Constraint: "uq_rooms_room_number"}
	}
	cp := *room
	m.rooms[room.RoomID] = &cp
	return nil
}

func (m *mockRoomRepo) Delete(_ context.Context, id string) error {
	delete(m.rooms, id)
	return nil
}

func (m *mockRoomRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.rooms)), nil
}

func (m *mockRoomRepo) CountByStatus(_ context.Context, status string) (int64, error) {
	var n int64
	for _, r := range m.rooms {
		if r.Status == status {
			n++
		}
	}
	return n, nil
}

// ── Mock StudentRepository ──

type mockStudentRepo struct {
	students map[string]*model.Student
	seq      int
}

func newMockStudentRepo() *mockStudentRepo {
	return &mockStudentRepo{students: make(map[string]*model.Student)}
}

func (m *mockStudentRepo) conflict(st *model.Student) error {
	for id, other := range m.students {
		if id == st.StudentID {
			continue
		}
		if other.RollNumber == st.RollNumber {
			return &pkgerrors.DuplicateError{Constraint: "uq_students_roll_number"}
		}
		if other.Email == st.Email {
			return &pkgerrors.DuplicateError{Constraint: "uq_students_email"}
		}
	}
	return nil
}

func (m *mockStudentRepo) Create(_ context.Context, st *model.Student) error {
	if err := m.conflict(st); err != nil {
		return err
	}
	if st.StudentID == "" {
		m.seq++
		st.StudentID = fmt.Sprintf("stu-%d", m.seq)
	}
	m.students[st.StudentID] = st
	return nil
}

func (m *mockStudentRepo) GetByID(_ context.Context, id string) (*model.Student, error) {
	if st, ok := m.students[id]; ok {
		cp := *st
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStudentRepo) List(_ context.Context, status, roomNumber string) ([]model.Student, error) {
	var result []model.Student
	for _, st := range m.students {
		if status != "" && st.Status != status {
			continue
		}
		if roomNumber != "" && (st.RoomNumber == nil || *st.RoomNumber != roomNumber) {
			continue
		}
		result = append(result, *st)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (m *mockStudentRepo) Update(_ context.Context, st *model.Student) error {
	if err := m.conflict(st); err != nil {
		return err
	}
	cp := *st
	m.students[st.StudentID] = &cp
	return nil
}

func (m *mockStudentRepo) Delete(_ context.Context, id string) error {
	delete(m.students, id)
	return nil
}

func (m *mockStudentRepo) ListActiveWithRoom(_ context.Context) ([]model.Student, error) {
	var result []model.Student
	for _, st := range m.students {
		if st.Status == model.StudentStatusActive && st.HasRoom() {
			result = append(result, *st)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].RollNumber < result[j].RollNumber })
	return result, nil
}

func (m *mockStudentRepo) NamesByRoom(_ context.Context, roomNumbers []string) (map[string][]string, error) {
	wanted := make(map[string]bool, len(roomNumbers))
	for _, n := range roomNumbers {
		wanted[n] = true
	}
	result := make(map[string][]string)
	for _, st := range m.students {
		if st.RoomNumber != nil && wanted[*st.RoomNumber] {
			result[*st.RoomNumber] = append(result[*st.RoomNumber], st.Name)
		}
	}
	for k := range result {
		sort.Strings(result[k])
	}
	return result, nil
}

func (m *mockStudentRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.students)), nil
}

func (m *mockStudentRepo) CountJoinedBefore(_ context.Context, before time.Time) (int64, error) {
	var n int64
	for _, st := range m.students {
		if st.JoinDate.Before(before) {
			n++
		}
	}
	return n, nil
}

// ── Mock FeeRecordRepository ──

type mockFeeRecordRepo struct {
	records map[string]*model.FeeRecord
	seq     int
	// existsHidden 模拟并发竞争：存在性检查看不到已有记录
	existsHidden bool
}

func newMockFeeRecordRepo() *mockFeeRecordRepo {
	return &mockFeeRecordRepo{records: make(map[string]*model.FeeRecord)}
}

func (m *mockFeeRecordRepo) duplicate(rec *model.FeeRecord) bool {
	for id, other := range m.records {
		if id != rec.FeeRecordID && other.RollNumber == rec.RollNumber && other.Month == rec.Month {
			return true
		}
	}
	return false
}

func (m *mockFeeRecordRepo) Create(_ context.Context, rec *model.FeeRecord) error {
	if m.duplicate(rec) {
		return &pkgerrors.DuplicateError{Constraint: "uq_fee_records_roll_month"}
	}
	if rec.FeeRecordID == "" {
		m.seq++
		rec.FeeRecordID = fmt.Sprintf("fee-%d", m.seq)
	}
	m.records[rec.FeeRecordID] = rec
	return nil
}

func (m *mockFeeRecordRepo) CreateIfAbsent(ctx context.Context, rec *model.FeeRecord) (bool, error) {
	if m.duplicate(rec) {
		return false, nil
	}
	return true, m.Create(ctx, rec)
}

func (m *mockFeeRecordRepo) GetByID(_ context.Context, id string) (*model.FeeRecord, error) {
	if r, ok := m.records[id]; ok {
		cp := *r
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockFeeRecordRepo) List(_ context.Context, status, month string) ([]model.FeeRecord, error) {
	var result []model.FeeRecord
	for _, r := range m.records {
		if status != "" && r.Status != status {
			continue
		}
		if month != "" && r.Month != month {
			continue
		}
		result = append(result, *r)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].StudentName < result[j].StudentName })
	return result, nil
}

func (m *mockFeeRecordRepo) Update(_ context.Context, rec *model.FeeRecord) error {
	if m.duplicate(rec) {
		return &pkgerrors.DuplicateError{Constraint: "uq_fee_records_roll_month"}
	}
	cp := *rec
	m.records[rec.FeeRecordID] = &cp
	return nil
}

func (m *mockFeeRecordRepo) Delete(_ context.Context, id string) error {
	delete(m.records, id)
	return nil
}

func (m *mockFeeRecordRepo) ExistsForMonth(_ context.Context, rollNumber, month string) (bool, error) {
	if m.existsHidden {
		return false, nil
	}
	for _, r := range m.records {
		if r.RollNumber == rollNumber && r.Month == month {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockFeeRecordRepo) SumPaidBetween(_ context.Context, from time.Time, to *time.Time) (float64, error) {
	var total float64
	for _, r := range m.records {
		if r.PaidDate == nil || r.PaidDate.Before(from) {
			continue
		}
		if to != nil && !r.PaidDate.Before(*to) {
			continue
		}
		total += r.Amount
	}
	return total, nil
}

func (m *mockFeeRecordRepo) CountByStatuses(_ context.Context, statuses ...string) (int64, error) {
	var n int64
	for _, r := range m.records {
		for _, s := range statuses {
			if r.Status == s {
				n++
				break
			}
		}
	}
	return n, nil
}

// ── Mock ComplaintRepository ──

type mockComplaintRepo struct {
	complaints map[string]*model.Complaint
	seq        int
}

func newMockComplaintRepo() *mockComplaintRepo {
	return &mockComplaintRepo{complaints: make(map[string]*model.Complaint)}
}

func (m *mockComplaintRepo) Create(_ context.Context, c *model.Complaint) error {
	if c.ComplaintID == "" {
		m.seq++
		c.ComplaintID = fmt.Sprintf("cmp-%d", m.seq)
	}
	m.complaints[c.ComplaintID] = c
	return nil
}

func (m *mockComplaintRepo) GetByID(_ context.Context, id string) (*model.Complaint, error) {
	if c, ok := m.complaints[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockComplaintRepo) List(_ context.Context, status string) ([]model.Complaint, error) {
	var result []model.Complaint
	for _, c := range m.complaints {
		if status != "" && c.Status != status {
			continue
		}
		result = append(result, *c)
	}
	return result, nil
}

func (m *mockComplaintRepo) Update(_ context.Context, c *model.Complaint) error {
	cp := *c
	m.complaints[c.ComplaintID] = &cp
	return nil
}

func (m *mockComplaintRepo) Delete(_ context.Context, id string) error {
	delete(m.complaints, id)
	return nil
}

func (m *mockComplaintRepo) CountByStatus(_ context.Context, status string) (int64, error) {
	var n int64
	for _, c := range m.complaints {
		if c.Status == status {
			n++
		}
	}
	return n, nil
}

func (m *mockComplaintRepo) CountByStatusSubmittedBefore(_ context.Context, status string, before time.Time) (int64, error) {
	var n int64
	for _, c := range m.complaints {
		if c.Status == status && c.DateSubmitted.Before(before) {
			n++
		}
	}
	return n, nil
}

// ── Mock ActivityRepository ──

type mockActivityRepo struct {
	activities []model.Activity
	createErr  error
}

func newMockActivityRepo() *mockActivityRepo {
	return &mockActivityRepo{}
}

func (m *mockActivityRepo) Create(_ context.Context, a *model.Activity) error {
	if m.createErr != nil {
		return m.createErr
	}
	a.ActivityID = fmt.Sprintf("act-%d", len(m.activities)+1)
	m.activities = append(m.activities, *a)
	return nil
}

func (m *mockActivityRepo) GetByID(_ context.Context, id string) (*model.Activity, error) {
	for i := range m.activities {
		if m.activities[i].ActivityID == id {
			cp := m.activities[i]
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockActivityRepo) ListRecent(_ context.Context, limit int) ([]model.Activity, error) {
	result := make([]model.Activity, len(m.activities))
	copy(result, m.activities)
	sort.SliceStable(result, func(i, j int) bool { return result[i].Timestamp.After(result[j].Timestamp) })
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// countType 统计某类型动态条数
func (m *mockActivityRepo) countType(activityType string) int {
	n := 0
	for _, a := range m.activities {
		if a.Type == activityType {
			n++
		}
	}
	return n
}

// ── Mock UserRepository ──

type mockUserRepo struct {
	users     map[string]*model.User // key: username
	getErr    error
	createErr error
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	if _, ok := m.users[user.Username]; ok {
		return &pkgerrors.DuplicateError{Constraint: "uq_users_username"}
	}
	if user.UserID == "" {
		user.UserID = "user-" + user.Username
	}
	m.users[user.Username] = user
	return nil
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (*model.User, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if u, ok := m.users[username]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

// ── 测试辅助 ──

type mockRepos struct {
	room      *mockRoomRepo
	student   *mockStudentRepo
	feeRecord *mockFeeRecordRepo
	complaint *mockComplaintRepo
	activity  *mockActivityRepo
	user      *mockUserRepo
}

func newMockRepos() (*repository.Repository, *mockRepos) {
	m := &mockRepos{
		room:      newMockRoomRepo(),
		student:   newMockStudentRepo(),
		feeRecord: newMockFeeRecordRepo(),
		complaint: newMockComplaintRepo(),
		activity:  newMockActivityRepo(),
		user:      newMockUserRepo(),
	}
	repo := &repository.Repository{
		Room:      m.room,
		Student:   m.student,
		FeeRecord: m.feeRecord,
		Complaint: m.complaint,
		Activity:  m.activity,
		User:      m.user,
	}
	return repo, m
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}

func strPtr(s string) *string { return &s }

func intPtr(n int) *int { return &n }

func floatPtr(f float64) *float64 { return &f }

func datePtr(y int, mo time.Month, d int) *time.Time {
	t := time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)
	return &t
}
