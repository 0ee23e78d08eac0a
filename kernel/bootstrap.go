package kernel

// New records the task-memory bounds, programs the system tick's reload
// register to its startup value, configures its clock source (but leaves
// counting disabled), and sets PendSV and SysTick to the lowest exception
// priority. This is the init half of bootstrap; Start carries out the
// rest once every task has been created.
func New(cfg Config) *Kernel {
	k := &Kernel{
		arena:   kernelArena{top: cfg.MemHigh, limit: cfg.MemLow},
		table:   make([]tcb, 1), // index 0 is the noTask sentinel
		current: noTask,
		leaving: noTask,
		idle:    noTask,
		arch:    cfg.Arch,
		trace:   traceOf(cfg.Trace),
	}
	k.scb.setLowestPriorities()
	k.systick.configure(cfg.TickReload)

	if cfg.WithIdle {
		idle, err := k.addTask(DefaultIdle, 64, false)
		if err == nil {
			k.idle = idle.id
		}
	}
	return k
}

// AddTask carves a TCB and stack from the kernel's task-memory region,
// enqueues it ready, and starts the task's goroutine, parked waiting for
// its first scheduling in. It returns ErrOutOfMemory if the bump
// allocator's new top would cross the configured lower limit.
func (k *Kernel) AddTask(entry func(*Task), stackSize uint32) (*Task, error) {
	return k.addTask(entry, stackSize, true)
}

// addTask is AddTask's implementation, parametrized on whether the new
// task should be enqueued ready immediately. The idle task is carved the
// same way as any other task but must never sit on the ready queue —
// pickNext only ever reaches it via the "current absent, idle configured"
// fallback — so New carves it with ready=false.
func (k *Kernel) addTask(entry func(*Task), stackSize uint32, ready bool) (*Task, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	addr, ok := k.arena.create(stackSize, tcbApproxSize)
	if !ok {
		return nil, ErrOutOfMemory
	}

	id := TaskID(len(k.table))
	stack := make([]byte, frameWords*wordSize)
	// A Go function value has no 32-bit entry address, so the frame's PC
	// slot receives the task's arena address instead; nothing executes
	// from it.
	sp := buildInitialFrame(stack, addr)

	t := tcb{
		stack: stack,
		sp:    sp,
		entry: entry,
		wake:  make(chan struct{}, 1),
		wait:  true,
	}
	k.table = append(k.table, t)
	if ready {
		k.ready.enqueue(k, id)
		k.tcb(id).wait = false
	}

	k.wg.Add(1)
	go func() {
		defer k.wg.Done()
		k.runTask(id)
	}()

	traceOf(k.trace).TaskCreated(id, stackSize)
	return &Task{id: id, k: k}, nil
}

// DefaultIdle is the body of the idle task New creates when
// Config.WithIdle is set: a busy-halt equivalent that simply yields
// forever, since a hosted goroutine cannot execute a real WFI.
func DefaultIdle(t *Task) {
	for {
		t.Yield()
	}
}

// Start performs the OS-start step that a supervisor call with immediate
// zero triggers, and hands control to the first
// task pickNext selects — enabling the tick only once a task is about to
// run. It returns immediately once that handoff is made; from then on the
// program's remaining lifetime plays out inside task goroutines
// coordinated through the scheduler, and the caller typically waits on
// Join or its own external driver loop. No master stack is modeled, so
// no master-stack frame is carved and no mode switch takes place.
func (k *Kernel) Start() {
	k.mu.Lock()
	k.started = true
	k.pickNext()
	first := k.current
	k.mu.Unlock()

	if first == noTask {
		// No task and no idle configured: nothing to run, the OS-start
		// trampoline would configure sleep-on-exit and return with
		// interrupts enabled, waiting for the first interrupt to create
		// work. There is no interrupt source here, so this is a no-op.
		return
	}

	k.systick.enable()
	traceOf(k.trace).TaskSwitch(noTask, first)
	k.switchContext(noTask, first)
	k.tcb(first).wake <- struct{}{}
}

// Join blocks the calling goroutine (normally the host harness's main
// goroutine, standing in for "the CPU") until every task goroutine this
// kernel created has returned. Dynamic task destruction is not
// supported, so in practice this only returns for scenarios whose task
// bodies deliberately terminate, such as unit tests that drive a handful
// of ticks and let tasks fall off the end.
func (k *Kernel) Join() {
	k.wg.Wait()
}
