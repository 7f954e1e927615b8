package school

type TeacherInfo struct {
	Id              string `json:"id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	AssignedClassId string `json:"assignedClassId"`
	CreateTime      int64  `json:"createTime"`
}

type ListTeachersReq struct {
}

type ListTeachersResp struct {
	Teachers []*TeacherInfo `json:"teachers"`
}

type CreateTeacherReq struct {
	Name     string `json:"name,required"`
	Email    string `json:"email,required"`
	Password string `json:"password,required"`
}

type CreateTeacherResp struct {
	Teacher *TeacherInfo `json:"teacher"`
}

type DeleteTeacherReq struct {
	Id string `path:"id"`
}
