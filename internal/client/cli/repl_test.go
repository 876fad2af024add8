package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
}

func (f *fakeExec) record(name string) error {
	f.calls = append(f.calls, name)
	return nil
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	return f.record("register")
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.record("login")
}
func (f *fakeExec) Tasks(ctx context.Context) error      { return f.record("tasks") }
func (f *fakeExec) VerifyTask(ctx context.Context) error { return f.record("verify") }
func (f *fakeExec) Store(ctx context.Context) error      { return f.record("store") }
func (f *fakeExec) BuyStore(ctx context.Context) error   { return f.record("buystore") }
func (f *fakeExec) Market(ctx context.Context) error     { return f.record("market") }
func (f *fakeExec) BuyMarket(ctx context.Context) error  { return f.record("buymarket") }
func (f *fakeExec) History(ctx context.Context) error    { return f.record("history") }
func (f *fakeExec) Gifts(ctx context.Context) error      { return f.record("gifts") }
func (f *fakeExec) SellGift(ctx context.Context) error   { return f.record("sellgift") }
func (f *fakeExec) Exchange(ctx context.Context) error   { return f.record("exchange") }
func (f *fakeExec) BuyShares(ctx context.Context) error  { return f.record("buy") }
func (f *fakeExec) SellShares(ctx context.Context) error { return f.record("sell") }
func (f *fakeExec) Chart(ctx context.Context) error      { return f.record("chart") }
func (f *fakeExec) Profile(ctx context.Context) error    { return f.record("profile") }
func (f *fakeExec) Withdraw(ctx context.Context) error   { return f.record("withdraw") }
func (f *fakeExec) Refresh(ctx context.Context) error    { return f.record("refresh") }
func (f *fakeExec) Roulette(ctx context.Context) error   { return f.record("roulette") }
func (f *fakeExec) Top(ctx context.Context) error        { return f.record("top") }
func (f *fakeExec) Admin(ctx context.Context) error      { return f.record("admin") }
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.record("logout")
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"tasks",
		"store",
		"buy",
		"roulette",
		"foobar",
		"logout",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	wantOrder := []string{"login", "tasks", "store", "buy", "roulette", "logout"}
	if len(exec.calls) < len(wantOrder) {
		t.Fatalf("few calls: %+v", exec.calls)
	}
	idx := 0
	for _, c := range exec.calls {
		if idx < len(wantOrder) && c == wantOrder[idx] {
			idx++
		}
	}
	if idx != len(wantOrder) {
		t.Fatalf("commands order mismatch: got %v, want subseq %v", exec.calls, wantOrder)
	}
}

func TestRunREPL_EmptyLinesAndQuit(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("\n   \nquit\n")
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}

func TestRunREPL_EOFExits(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("top\n")
	exec := &fakeExec{}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "" }, sc)

	if len(exec.calls) != 1 || exec.calls[0] != "top" {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}
