package school

type MessageInfo struct {
	Id          string `json:"id"`
	TeacherId   string `json:"teacherId"`
	TeacherName string `json:"teacherName"`
	StudentId   string `json:"studentId"`
	StudentName string `json:"studentName"`
	ClassId     string `json:"classId"`
	ClassName   string `json:"className"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Reason      string `json:"reason"`
	CreateTime  int64  `json:"createTime"`
}

type ListMessagesReq struct {
}

type ListMessagesResp struct {
	Messages []*MessageInfo `json:"messages"`
}

type CreateMessageReq struct {
	StudentId string `json:"studentId,required"`
	Date      string `json:"date,required"`
	Time      string `json:"time,required"`
	Reason    string `json:"reason"`
}

type CreateMessageResp struct {
	Message *MessageInfo `json:"message"`
}

type DeleteMessageReq struct {
	Id string `path:"id"`
}
