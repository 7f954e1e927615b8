package school

type TeacherRef struct {
	Id    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type StudentRef struct {
	Id   string `json:"id"`
	Name string `json:"name"`
}

// ClassInfo 班级的读侧视图，教师与学生姓名在读取时联表展开
type ClassInfo struct {
	Id         string        `json:"id"`
	Name       string        `json:"name"`
	Teacher    *TeacherRef   `json:"teacher"`
	Students   []*StudentRef `json:"students"`
	CreateTime int64         `json:"createTime"`
}

type ListClassesReq struct {
}

type ListClassesResp struct {
	Classes []*ClassInfo `json:"classes"`
}

type CreateClassReq struct {
	Name string `json:"name,required"`
}

type CreateClassResp struct {
	Class *ClassInfo `json:"class"`
}

type DeleteClassReq struct {
	Id string `path:"id"`
}

type AssignTeacherReq struct {
	Id        string `path:"id"`
	TeacherId string `json:"teacherId"`
}

type AssignTeacherResp struct {
	Class *ClassInfo `json:"class"`
}

type AddStudentReq struct {
	Id        string `path:"id"`
	StudentId string `json:"studentId,required"`
}

type AddStudentResp struct {
	Class *ClassInfo `json:"class"`
}

type RemoveStudentReq struct {
	Id        string `path:"id"`
	StudentId string `path:"studentId"`
}

type RemoveStudentResp struct {
	Class *ClassInfo `json:"class"`
}
