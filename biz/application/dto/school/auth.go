package school

type LoginReq struct {
	Email    string `json:"email,required"`
	Password string `json:"password,required"`
}

type LoginResp struct {
	Token        string    `json:"token"`
	AccessExpire int64     `json:"accessExpire"`
	User         *UserInfo `json:"user"`
}

type GetMeReq struct {
}

type UserInfo struct {
	Id              string `json:"id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	Role            string `json:"role"`
	AssignedClassId string `json:"assignedClassId"`
}

type Response struct {
	Message string `json:"message"`
}
