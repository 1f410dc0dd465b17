package form

// Event names published around field rendering. Listeners may inspect or
// mutate the field; the dispatch itself is fire-and-forget.
const (
	EventBeforeFieldRender = "formbind.beforeFieldRender"
	EventAfterFieldRender  = "formbind.afterFieldRender"
)

// Event carries the rendering context handed to dispatchers.
type Event struct {
	Name  string
	Form  *Form
	Field FieldRenderer
}

// Dispatcher receives render lifecycle events. It is injected at session
// construction instead of being reached through shared global state.
type Dispatcher interface {
	Dispatch(event Event)
}

// DispatcherFunc adapts a plain function into a Dispatcher.
type DispatcherFunc func(event Event)

// Dispatch implements Dispatcher.
func (f DispatcherFunc) Dispatch(event Event) {
	if f != nil {
		f(event)
	}
}

// NotifyBeforeFieldRender publishes EventBeforeFieldRender for the field.
// A nil dispatcher makes this a no-op.
func (f *Form) NotifyBeforeFieldRender(field FieldRenderer) {
	f.notify(EventBeforeFieldRender, field)
}

// NotifyAfterFieldRender publishes EventAfterFieldRender for the field.
func (f *Form) NotifyAfterFieldRender(field FieldRenderer) {
	f.notify(EventAfterFieldRender, field)
}

func (f *Form) notify(name string, field FieldRenderer) {
	if f.cfg.Dispatcher == nil {
		return
	}
	f.cfg.Dispatcher.Dispatch(Event{Name: name, Form: f, Field: field})
}
