package listkit

// ToastKind selects the color and icon of a toast.
type ToastKind uint8

const (
	ToastInfo ToastKind = iota
	ToastSuccess
	ToastWarning
	ToastError
)

// Toast is one transient message.
type Toast struct {
	Message  string
	Kind     ToastKind
	Duration float64 // seconds
	// Shown is the host time of the first pass that saw the toast. Zero
	// until then.
	Shown float64
}

// DefaultToastDuration is used when Push is given no duration.
const DefaultToastDuration = 3.0

// ToastMaxVisible caps how many toasts are stacked at once.
const ToastMaxVisible = 5

// ToastStack holds pending toasts. Keep one per window and pass it to
// DrawToasts every pass.
type ToastStack struct {
	Toasts []Toast
}

// Push queues a toast. A non-positive duration means DefaultToastDuration.
func (ts *ToastStack) Push(message string, kind ToastKind, duration float64) {
	if duration <= 0 {
		duration = DefaultToastDuration
	}
	ts.Toasts = append(ts.Toasts, Toast{Message: message, Kind: kind, Duration: duration})
	if len(ts.Toasts) > ToastMaxVisible*2 {
		ts.Toasts = ts.Toasts[len(ts.Toasts)-ToastMaxVisible:]
	}
}

func (ts *ToastStack) Info(message string) { ts.Push(message, ToastInfo, 0) }
func (ts *ToastStack) Error(message string) { ts.Push(message, ToastError, 0) }

// Len reports how many toasts are still alive.
func (ts *ToastStack) Len() int {
	if ts == nil {
		return 0
	}
	return len(ts.Toasts)
}

// Update stamps new toasts with now and drops the expired ones. It reports
// whether any toast remains, so hosts know to keep repainting.
func (ts *ToastStack) Update(now float64) bool {
	active := ts.Toasts[:0]
	for _, t := range ts.Toasts {
		if t.Shown == 0 {
			t.Shown = now
		}
		if now-t.Shown < t.Duration {
			active = append(active, t)
		}
	}
	ts.Toasts = active
	return len(active) > 0
}

// opacity fades a toast in over its first 150ms and out over the last 30%
// of its duration.
func (t *Toast) opacity(now float64) float32 {
	const fadeIn, fadeOutStart = 0.15, 0.7
	elapsed := now - t.Shown
	switch {
	case elapsed < fadeIn:
		return float32(elapsed / fadeIn)
	case elapsed > t.Duration*fadeOutStart:
		return float32(1 - (elapsed-t.Duration*fadeOutStart)/(t.Duration*(1-fadeOutStart)))
	}
	return 1
}

// DrawToasts advances ts to ctx.Time and stacks the live toasts in the
// bottom right corner on the foreground list. Call it after the rest of
// the UI.
func (ctx *Context) DrawToasts(ts *ToastStack) {
	if ts == nil || len(ts.Toasts) == 0 {
		return
	}
	if ts.Update(ctx.Time) {
		ctx.RequestRepaint()
	}
	if !ctx.IsRepaint() {
		return
	}

	const (
		padX   = float32(12)
		padY   = float32(8)
		margin = float32(10)
		gap    = float32(6)
	)
	dl := ctx.ForegroundDrawList
	right := ctx.DisplaySize.X - margin
	bottom := ctx.DisplaySize.Y - margin

	first := max(len(ts.Toasts)-ToastMaxVisible, 0)
	for i := len(ts.Toasts) - 1; i >= first; i-- {
		t := &ts.Toasts[i]
		a := t.opacity(ctx.Time)
		if a <= 0 {
			continue
		}

		icon := toastIcon(t.Kind) + " "
		iconW := ctx.MeasureText(icon).X
		text := ctx.MeasureText(t.Message)
		w := iconW + text.X + padX*2
		h := text.Y + padY*2
		x, y := right-w, bottom-h

		r, g, b, _ := UnpackRGBA(ctx.toastColor(t.Kind))
		dl.AddRect(x, y, w, h, RGBA(r, g, b, uint8(230*a)))
		dl.AddRectOutline(x, y, w, h, RGBA(255, 255, 255, uint8(60*a)), 1)

		fg := RGBA(255, 255, 255, uint8(255*a))
		ctx.AddTextTo(dl, x+padX, y+padY, icon, fg)
		ctx.AddTextTo(dl, x+padX+iconW, y+padY, t.Message, fg)

		bottom -= h + gap
	}
}

func (ctx *Context) toastColor(k ToastKind) uint32 {
	switch k {
	case ToastSuccess:
		return ctx.style.ToastSuccessColor
	case ToastWarning:
		return ctx.style.ToastWarningColor
	case ToastError:
		return ctx.style.ToastErrorColor
	}
	return ctx.style.ToastInfoColor
}

func toastIcon(k ToastKind) string {
	switch k {
	case ToastSuccess:
		return "+"
	case ToastWarning:
		return "!"
	case ToastError:
		return "X"
	}
	return "i"
}
