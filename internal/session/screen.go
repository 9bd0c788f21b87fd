package session

// Screen identifies one view of the terminal UI. The server tracks which
// screen each session is on so thin clients can resume exactly where the
// operator left off.
type Screen string

const (
	ScreenLogin     Screen = "login"
	ScreenDashboard Screen = "dashboard"
	ScreenSales     Screen = "sales"
	ScreenPOS       Screen = "sales.pos"
	ScreenCart      Screen = "sales.cart"
	ScreenInventory Screen = "inventory"
	ScreenCustomers Screen = "customers"
	ScreenPurchase  Screen = "purchase"
	ScreenSuppliers Screen = "purchase.suppliers"
	ScreenOrders    Screen = "purchase.orders"
	ScreenNewOrder  Screen = "purchase.new-order"
	ScreenFinance   Screen = "finance"
	ScreenReports   Screen = "finance.reports"
)

// transitions lists, per screen, the screens reachable from it. The dashboard
// is the hub: top-level screens are entered from it, sub-screens only from
// their parent.
var transitions = map[Screen][]Screen{
	ScreenLogin:     {ScreenDashboard},
	ScreenDashboard: {ScreenSales, ScreenInventory, ScreenCustomers, ScreenPurchase, ScreenFinance},
	ScreenSales:     {ScreenPOS, ScreenCart, ScreenDashboard},
	ScreenPOS:       {ScreenCart, ScreenSales, ScreenDashboard},
	ScreenCart:      {ScreenPOS, ScreenSales, ScreenDashboard},
	ScreenInventory: {ScreenDashboard},
	ScreenCustomers: {ScreenDashboard},
	ScreenPurchase:  {ScreenSuppliers, ScreenOrders, ScreenNewOrder, ScreenDashboard},
	ScreenSuppliers: {ScreenPurchase, ScreenDashboard},
	ScreenOrders:    {ScreenNewOrder, ScreenPurchase, ScreenDashboard},
	ScreenNewOrder:  {ScreenOrders, ScreenPurchase, ScreenDashboard},
	ScreenFinance:   {ScreenReports, ScreenDashboard},
	ScreenReports:   {ScreenFinance, ScreenDashboard},
}

// Valid reports whether s names a known screen.
func Valid(s Screen) bool {
	_, ok := transitions[s]
	return ok
}

// CanNavigate reports whether the state machine allows moving from one screen
// directly to another. Logout (any screen back to login) is always allowed.
func CanNavigate(from, to Screen) bool {
	if to == ScreenLogin {
		return true
	}
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
