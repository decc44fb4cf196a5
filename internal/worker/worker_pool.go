package worker

func (p *WorkerPool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}
	p.logger.Infof("worker pool: started %d event workers", p.numWorkers)
}

// Stop gracefully stops all workers and waits.
func (p *WorkerPool) Stop() {
	p.cancel()
	p.wg.Wait()
	p.logger.Info("worker pool: all event workers stopped")
}
