package service

import (
	"context"
	"testing"

	"mentorlink-be/internal/entity"
	"mentorlink-be/internal/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userWithCourses(username string, role entity.UserRole, courses ...string) *entity.User {
	return &entity.User{
		Id:           uuid.New(),
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "hashed",
		Role:         role,
		Courses:      courses,
		Contact:      []string{"@" + username},
	}
}

func TestFindMentorsOverlap(t *testing.T) {
	student := userWithCourses("stu", entity.UserRoleStudent, "Algorithms", "Databases")
	matching := userWithCourses("mentor-a", entity.UserRoleMentor, "Databases", "Compilers")
	nonMatching := userWithCourses("mentor-b", entity.UserRoleMentor, "Networking")
	otherStudent := userWithCourses("stu2", entity.UserRoleStudent, "Databases")

	svc := NewMatchService(&fakeFactory{repo: newFakeUserRepo(student, matching, nonMatching, otherStudent)})

	mentors, err := svc.FindMentors(context.Background(), student.Id)
	require.NoError(t, err)
	require.Len(t, mentors, 1)
	assert.Equal(t, "mentor-a", mentors[0].Username)
	assert.Equal(t, "mentor", mentors[0].Role)
}

func TestFindMentorsRequesterMustBeStudent(t *testing.T) {
	mentor := userWithCourses("m", entity.UserRoleMentor, "Algorithms")
	svc := NewMatchService(&fakeFactory{repo: newFakeUserRepo(mentor)})

	cases := []struct {
		name string
		id   uuid.UUID
	}{
		{name: "unknown requester", id: uuid.New()},
		{name: "mentor requester", id: mentor.Id},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.FindMentors(context.Background(), tc.id)
			require.Error(t, err)
			assert.Equal(t, apperror.KindAuth, apperror.KindOf(err))
		})
	}
}

func TestFindMentorsEmptyCourses(t *testing.T) {
	student := userWithCourses("stu", entity.UserRoleStudent)
	svc := NewMatchService(&fakeFactory{repo: newFakeUserRepo(student)})

	_, err := svc.FindMentors(context.Background(), student.Id)
	require.Error(t, err)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
	assert.Contains(t, err.Error(), "courses are empty")
}

func TestFindMentorsNoneMatch(t *testing.T) {
	student := userWithCourses("stu", entity.UserRoleStudent, "Algorithms")
	mentor := userWithCourses("m", entity.UserRoleMentor, "Networking")
	svc := NewMatchService(&fakeFactory{repo: newFakeUserRepo(student, mentor)})

	_, err := svc.FindMentors(context.Background(), student.Id)
	require.Error(t, err)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestFindStudents(t *testing.T) {
	s1 := userWithCourses("s1", entity.UserRoleStudent, "Databases")
	s2 := userWithCourses("s2", entity.UserRoleStudent, "Networking")
	m := userWithCourses("m", entity.UserRoleMentor, "Databases")
	svc := NewMatchService(&fakeFactory{repo: newFakeUserRepo(s1, s2, m)})

	students, err := svc.FindStudents(context.Background(), []string{"Databases"})
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, "s1", students[0].Username)
}

func TestFindStudentsEmptyCourses(t *testing.T) {
	svc := NewMatchService(&fakeFactory{repo: newFakeUserRepo()})

	_, err := svc.FindStudents(context.Background(), nil)
	require.Error(t, err)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
}

func TestFindStudentsNoneMatch(t *testing.T) {
	svc := NewMatchService(&fakeFactory{repo: newFakeUserRepo()})

	_, err := svc.FindStudents(context.Background(), []string{"Databases"})
	require.Error(t, err)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestSearchMentorsByUsername(t *testing.T) {
	m1 := userWithCourses("algo_guru", entity.UserRoleMentor, "Networking")
	m2 := userWithCourses("db_fan", entity.UserRoleMentor, "Algorithms")
	svc := NewMatchService(&fakeFactory{repo: newFakeUserRepo(m1, m2)})

	// m2 teaches "Algorithms" but the username match on m1 wins; the two
	// result sets are never combined.
	mentors, err := svc.SearchMentors(context.Background(), "algo")
	require.NoError(t, err)
	require.Len(t, mentors, 1)
	assert.Equal(t, "algo_guru", mentors[0].Username)
}

func TestSearchMentorsFallsBackToCourses(t *testing.T) {
	m1 := userWithCourses("db_fan", entity.UserRoleMentor, "Algorithms")
	svc := NewMatchService(&fakeFactory{repo: newFakeUserRepo(m1)})

	mentors, err := svc.SearchMentors(context.Background(), "algo")
	require.NoError(t, err)
	require.Len(t, mentors, 1)
	assert.Equal(t, "db_fan", mentors[0].Username)
}

func TestSearchMentorsEmptyQuery(t *testing.T) {
	svc := NewMatchService(&fakeFactory{repo: newFakeUserRepo()})

	_, err := svc.SearchMentors(context.Background(), "")
	require.Error(t, err)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
}

func TestSearchMentorsNoneMatch(t *testing.T) {
	svc := NewMatchService(&fakeFactory{repo: newFakeUserRepo()})

	_, err := svc.SearchMentors(context.Background(), "quantum")
	require.Error(t, err)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestMatchedUsersNeverCarryPasswordHash(t *testing.T) {
	student := userWithCourses("stu", entity.UserRoleStudent, "Databases")
	mentor := userWithCourses("m", entity.UserRoleMentor, "Databases")
	svc := NewMatchService(&fakeFactory{repo: newFakeUserRepo(student, mentor)})

	mentors, err := svc.FindMentors(context.Background(), student.Id)
	require.NoError(t, err)
	require.Len(t, mentors, 1)
	// MatchedUser has no hash field at all; spot-check the payload shape.
	assert.Equal(t, []string{"Databases"}, mentors[0].Courses)
	assert.Equal(t, []string{"@m"}, mentors[0].Contact)
}
