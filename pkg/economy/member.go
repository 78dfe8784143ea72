package economy

// Member 代表聊天群組中的一名成員，由宿主平台提供。
// 對經濟契約而言它是不透明的識別，只需穩定的 ID 作為帳戶查詢鍵。
type Member interface {
	// ID 成員的唯一識別 (例如 QQ 號)
	ID() int64
	// Name 成員名稱，僅供已棄用的 HasAccountByName 解析身分使用
	Name() string
}

type member struct {
	id   int64
	name string
}

// NewMember 建立一個簡單的 Member 實作，供沒有自己成員型別的宿主與測試使用
func NewMember(id int64, name string) Member {
	return member{id: id, name: name}
}

func (m member) ID() int64 { return m.id }
func (m member) Name() string { return m.name }
