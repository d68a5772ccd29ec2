package approvalrequesthandler

import (
	"testing"

	"staff-hub-backend/models"
	dbmodels "staff-hub-backend/models/db"

	"github.com/stretchr/testify/require"
)

func testLevels() []dbmodels.ApprovalLevel {
	return []dbmodels.ApprovalLevel{
		{LevelSequence: 1, ApproverType: models.ApproverTypeUser, ApproverID: "user-1"},
		{LevelSequence: 2, ApproverType: models.ApproverTypeRole, ApproverID: "role-hr"},
		{LevelSequence: 3, ApproverType: models.ApproverTypeUser, ApproverID: "user-3"},
	}
}

func TestFindLevel(t *testing.T) {
	levels := testLevels()

	t.Run(`существующий уровень`, func(t *testing.T) {
		level := findLevel(levels, 2)
		require.NotNil(t, level)
		require.Equal(t, "role-hr", level.ApproverID)
	})

	t.Run(`несуществующий уровень`, func(t *testing.T) {
		require.Nil(t, findLevel(levels, 4))
		require.Nil(t, findLevel(nil, 1))
	})
}

func TestAuthorizeLevel(t *testing.T) {
	t.Run(`прямое назначение на пользователя`, func(t *testing.T) {
		level := dbmodels.ApprovalLevel{ApproverType: models.ApproverTypeUser, ApproverID: "user-1"}
		require.True(t, authorizeLevel(level, models.Actor{UserID: "user-1"}))
		require.False(t, authorizeLevel(level, models.Actor{UserID: "user-2"}))
		require.False(t, authorizeLevel(level, models.Actor{}))
	})

	t.Run(`назначение на роль`, func(t *testing.T) {
		level := dbmodels.ApprovalLevel{ApproverType: models.ApproverTypeRole, ApproverID: "role-hr"}
		require.True(t, authorizeLevel(level, models.Actor{UserID: "user-2", RoleID: "role-hr"}))
		require.False(t, authorizeLevel(level, models.Actor{UserID: "role-hr"}))
		require.False(t, authorizeLevel(level, models.Actor{RoleID: "role-sales"}))
	})

	t.Run(`неизвестный тип согласующего`, func(t *testing.T) {
		level := dbmodels.ApprovalLevel{ApproverType: "GROUP", ApproverID: "g1"}
		require.False(t, authorizeLevel(level, models.Actor{UserID: "g1", RoleID: "g1"}))
	})
}

func TestDecide(t *testing.T) {
	levels := testLevels()

	t.Run(`REJECT терминален на любом уровне`, func(t *testing.T) {
		for _, seq := range []int{1, 2, 3} {
			d := decide(levels, seq, models.ApprovalActionReject)
			require.Equal(t, models.ApprovalStatusRejected, d.Status)
			require.Nil(t, d.NextLevel)
			require.True(t, d.Status.IsTerminal())
		}
	})

	t.Run(`APPROVE двигает на следующий уровень`, func(t *testing.T) {
		d := decide(levels, 1, models.ApprovalActionApprove)
		require.Equal(t, models.ApprovalStatusPending, d.Status)
		require.NotNil(t, d.NextLevel)
		require.Equal(t, 2, d.NextLevel.LevelSequence)

		d = decide(levels, 2, models.ApprovalActionApprove)
		require.Equal(t, models.ApprovalStatusPending, d.Status)
		require.Equal(t, 3, d.NextLevel.LevelSequence)
	})

	t.Run(`APPROVE последнего уровня завершает заявку`, func(t *testing.T) {
		d := decide(levels, 3, models.ApprovalActionApprove)
		require.Equal(t, models.ApprovalStatusApproved, d.Status)
		require.Nil(t, d.NextLevel)
		require.True(t, d.Status.IsTerminal())
	})

	t.Run(`уровни проходятся строго по возрастанию`, func(t *testing.T) {
		seq := 1
		for {
			d := decide(levels, seq, models.ApprovalActionApprove)
			if d.NextLevel == nil {
				require.Equal(t, models.ApprovalStatusApproved, d.Status)
				break
			}
			require.Equal(t, seq+1, d.NextLevel.LevelSequence)
			seq = d.NextLevel.LevelSequence
		}
		require.Equal(t, 3, seq)
	})
}
