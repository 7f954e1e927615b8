package basic

type UserMeta struct {
	UserId string `json:"userId"`
}

func (m *UserMeta) GetUserId() string {
	if m == nil {
		return ""
	}
	return m.UserId
}
