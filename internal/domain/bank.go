package domain

// DefaultTransferFee is charged when a bank code is not in the list
const DefaultTransferFee = 15

// Bank is a Taiwanese bank code with its withdrawal transfer fee
type Bank struct {
	Code string `json:"code"`
	Name string `json:"name"`
	Fee  int    `json:"fee"`
}

// Banks lists the supported withdrawal banks; the fee-free banks come first
var Banks = []Bank{
	{Code: "812", Name: "台新銀行", Fee: 0},
	{Code: "218", Name: "玉山銀行", Fee: 0},
	{Code: "013", Name: "國泰世華", Fee: 0},
	{Code: "004", Name: "臺灣銀行", Fee: 15},
	{Code: "005", Name: "土地銀行", Fee: 15},
	{Code: "006", Name: "合作金庫", Fee: 15},
	{Code: "007", Name: "第一銀行", Fee: 15},
	{Code: "008", Name: "華南銀行", Fee: 15},
	{Code: "009", Name: "彰化銀行", Fee: 15},
	{Code: "012", Name: "台北富邦", Fee: 15},
	{Code: "016", Name: "高雄銀行", Fee: 15},
	{Code: "017", Name: "金門縣信合社", Fee: 15},
	{Code: "018", Name: "農業金庫", Fee: 15},
	{Code: "021", Name: "花旗銀行", Fee: 15},
	{Code: "022", Name: "美國銀行", Fee: 15},
	{Code: "023", Name: "瑞興銀行", Fee: 15},
	{Code: "024", Name: "渣打銀行", Fee: 15},
	{Code: "025", Name: "首都銀行", Fee: 15},
	{Code: "027", Name: "台灣中小企銀", Fee: 15},
	{Code: "031", Name: "上海銀行", Fee: 15},
	{Code: "032", Name: "兆豐銀行", Fee: 15},
	{Code: "033", Name: "瑞士銀行", Fee: 15},
	{Code: "038", Name: "泰國盤谷銀行", Fee: 15},
	{Code: "039", Name: "澳盛銀行", Fee: 15},
	{Code: "040", Name: "中華開發", Fee: 15},
	{Code: "041", Name: "板信銀行", Fee: 15},
	{Code: "045", Name: "陽信銀行", Fee: 15},
	{Code: "048", Name: "台新銀行", Fee: 0},
	{Code: "049", Name: "安泰銀行", Fee: 15},
	{Code: "050", Name: "聯邦銀行", Fee: 15},
	{Code: "052", Name: "遠東銀行", Fee: 15},
	{Code: "053", Name: "元大銀行", Fee: 15},
	{Code: "054", Name: "永豐銀行", Fee: 15},
	{Code: "055", Name: "玉山銀行", Fee: 0},
	{Code: "056", Name: "新光銀行", Fee: 15},
	{Code: "057", Name: "國泰世華", Fee: 0},
	{Code: "058", Name: "萬泰銀行", Fee: 15},
	{Code: "059", Name: "星辰銀行", Fee: 15},
	{Code: "061", Name: "日盛銀行", Fee: 15},
	{Code: "062", Name: "慶豐銀行", Fee: 15},
	{Code: "500", Name: "中華郵政", Fee: 15},
	{Code: "600", Name: "淡水區農會", Fee: 15},
	{Code: "700", Name: "中央銀行", Fee: 15},
	{Code: "800", Name: "交通銀行", Fee: 15},
}

// BankByCode looks up a bank by its three-digit code
func BankByCode(code string) (Bank, bool) {
	for _, b := range Banks {
		if b.Code == code {
			return b, true
		}
	}
	return Bank{}, false
}

// TransferFee returns the withdrawal fee for a bank code
func TransferFee(code string) int {
	if b, ok := BankByCode(code); ok {
		return b.Fee
	}
	return DefaultTransferFee
}

// FeeFreeBanks returns the banks that charge no transfer fee
func FeeFreeBanks() []Bank {
	free := make([]Bank, 0, 8)
	for _, b := range Banks {
		if b.Fee == 0 {
			free = append(free, b)
		}
	}
	return free
}
