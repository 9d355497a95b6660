package section

import (
	"github.com/Carmen-Shannon/oxy-scroll/common"
)

// Reference group indices of the default layout.
const (
	GroupSkills = iota
	GroupProjects
	GroupExperience
	GroupEducation
	GroupContact
)

// DefaultGroups are five groups spaced 72° apart around the world origin.
func DefaultGroups() []Group {
	return []Group{
		{Name: "skills", Facing: common.Radians(0)},
		{Name: "projects", Facing: common.Radians(72)},
		{Name: "experience", Facing: common.Radians(144)},
		{Name: "education", Facing: common.Radians(216)},
		{Name: "contact", Facing: common.Radians(288)},
	}
}

// DefaultEntries is the reference 14-section layout: ten skill stops flying around the skills
// cluster, then one stop per remaining group.
func DefaultEntries() []Entry {
	return []Entry{
		{Name: "intro", Start: 0.00, Group: GroupSkills, Hold: 0.2, Pose: common.NewPose(0, 2, 18, 0, 0, 0)},
		{Name: "languages", Start: 0.05, Group: GroupSkills, Hold: 0.15, Easing: common.EaseOutCubic, Pose: common.NewPose(-6, 3, 12, -4, 1, 0)},
		{Name: "backend", Start: 0.12, Group: GroupSkills, Hold: 0.15, Pose: common.NewPose(-3, 4, 9, -2, 2, -2)},
		{Name: "frontend", Start: 0.19, Group: GroupSkills, Hold: 0.15, Pose: common.NewPose(2, 4, 9, 2, 2, -2)},
		{Name: "databases", Start: 0.26, Group: GroupSkills, Hold: 0.15, Pose: common.NewPose(6, 3, 10, 4, 1, -1)},
		{Name: "cloud", Start: 0.33, Group: GroupSkills, Hold: 0.15, Pose: common.NewPose(7, 6, 6, 4, 4, -3)},
		{Name: "devops", Start: 0.40, Group: GroupSkills, Hold: 0.15, Pose: common.NewPose(3, 7, 4, 1, 5, -4)},
		{Name: "testing", Start: 0.47, Group: GroupSkills, Hold: 0.15, Pose: common.NewPose(-2, 7, 4, -1, 5, -4)},
		{Name: "graphics", Start: 0.54, Group: GroupSkills, Hold: 0.15, Pose: common.NewPose(-7, 5, 6, -4, 3, -3)},
		{Name: "tooling", Start: 0.61, Group: GroupSkills, Hold: 0.2, Easing: common.EaseInCubic, Pose: common.NewPose(-4, 2, 14, 0, 1, 0)},
		{Name: "projects", Start: 0.70, Group: GroupProjects, Hold: 0.25, Easing: common.Smootherstep, Pose: common.NewPose(0, 3, 16, 0, 1, 0)},
		{Name: "experience", Start: 0.78, Group: GroupExperience, Hold: 0.25, Easing: common.Smootherstep, Pose: common.NewPose(0, 4, 15, 0, 2, 0)},
		{Name: "education", Start: 0.86, Group: GroupEducation, Hold: 0.25, Easing: common.Smootherstep, Pose: common.NewPose(0, 3, 14, 0, 1, 0)},
		{Name: "contact", Start: 0.93, Group: GroupContact, Easing: common.EaseOutQuint, Pose: common.NewPose(0, 1, 12, 0, 1, 0)},
	}
}

// DefaultTable builds the reference layout. The entries are static and known to validate.
func DefaultTable() Table {
	t, err := NewTable(DefaultEntries(), WithGroups(DefaultGroups()...))
	if err != nil {
		panic(err)
	}
	return t
}
