package school

type StudentInfo struct {
	Id         string `json:"id"`
	Name       string `json:"name"`
	ClassId    string `json:"classId"`
	ClassName  string `json:"className"`
	CreateTime int64  `json:"createTime"`
}

type ListStudentsReq struct {
}

type ListStudentsResp struct {
	Students []*StudentInfo `json:"students"`
}

type CreateStudentReq struct {
	Name string `json:"name,required"`
}

type CreateStudentResp struct {
	Student *StudentInfo `json:"student"`
}

type DeleteStudentReq struct {
	Id string `path:"id"`
}
