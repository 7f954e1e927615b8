package consts

// 用户角色
const (
	RoleModerator = "moderator"
	RoleTeacher   = "teacher"
)

// 数据库相关
const (
	ID              = "_id"
	Email           = "email"
	Role            = "role"
	TeacherID       = "teacher_id"
	ClassID         = "class_id"
	AssignedClassID = "assigned_class_id"
	Students        = "students"
	CreateTime      = "create_time"
	UpdateTime      = "update_time"
)

// 集合名
const (
	UserCollectionName    = "user"
	ClassCollectionName   = "class"
	StudentCollectionName = "student"
	MessageCollectionName = "message"
)
